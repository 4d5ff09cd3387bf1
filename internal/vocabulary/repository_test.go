package vocabulary

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_whereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		want     string
		wantArgs []interface{}
	}{
		{
			name:   "empty filter",
			filter: Filter{},
			want:   "1=1",
		},
		{
			name:     "single condition",
			filter:   Filter{PartOfSpeech: "noun"},
			want:     "1=1 AND part_of_speech = ?",
			wantArgs: []interface{}{"noun"},
		},
		{
			name: "all conditions in column order",
			filter: Filter{
				PartOfSpeech:    "verb",
				Topic:           "Food",
				Subtopic:        "Fruit",
				PolitenessLevel: "Polite",
				JLPTLevel:       "N5",
				Difficulty:      "Beginner",
			},
			want:     "1=1 AND part_of_speech = ? AND topic = ? AND subtopic = ? AND politeness_level = ? AND jlpt_level = ? AND difficulty = ?",
			wantArgs: []interface{}{"verb", "Food", "Fruit", "Polite", "N5", "Beginner"},
		},
		{
			name:     "skips empty fields",
			filter:   Filter{Topic: "Food", Difficulty: "Advanced"},
			want:     "1=1 AND topic = ? AND difficulty = ?",
			wantArgs: []interface{}{"Food", "Advanced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.whereClause()
			assert.Equal(t, tt.want, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func vocabularyColumns() []string {
	return []string{
		"id", "kanji", "furigana", "romaji", "meaning", "part_of_speech",
		"topic", "subtopic", "politeness_level", "jlpt_level", "difficulty",
		"notes", "created_at", "updated_at",
	}
}

func TestDBRepository_Find(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    Filter
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []int64
		wantErr   bool
	}{
		{
			name:   "no filter returns everything",
			filter: Filter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns()).
					AddRow(1, "水", "みず", "mizu", "water", "noun", "Food", nil, "Neutral", "N5", "Beginner", nil, now, now).
					AddRow(2, nil, "たべます", "tabemasu", "to eat", "verb", "Food", nil, "Polite", "N5", "Beginner", nil, now, now)
				mock.ExpectQuery("SELECT \\* FROM vocabulary WHERE 1=1").
					WillReturnRows(rows)
			},
			wantIDs: []int64{1, 2},
		},
		{
			name:   "part of speech filter",
			filter: Filter{PartOfSpeech: "verb"},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(vocabularyColumns()).
					AddRow(2, nil, "たべます", "tabemasu", "to eat", "verb", "Food", nil, "Polite", "N5", "Beginner", nil, now, now)
				mock.ExpectQuery("SELECT \\* FROM vocabulary WHERE 1=1 AND part_of_speech = \\?").
					WithArgs("verb").
					WillReturnRows(rows)
			},
			wantIDs: []int64{2},
		},
		{
			name:   "combined filters",
			filter: Filter{PartOfSpeech: "noun", Topic: "Food", JLPTLevel: "N5"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM vocabulary WHERE 1=1 AND part_of_speech = \\? AND topic = \\? AND jlpt_level = \\?").
					WithArgs("noun", "Food", "N5").
					WillReturnRows(sqlmock.NewRows(vocabularyColumns()))
			},
			wantIDs: nil,
		},
		{
			name:   "query error",
			filter: Filter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM vocabulary WHERE 1=1").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(got))
			for _, entry := range got {
				gotIDs = append(gotIDs, entry.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, gotIDs)
			} else {
				assert.Equal(t, tt.wantIDs, gotIDs)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_List(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns a page with the total count", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vocabulary WHERE 1=1 AND topic = \\?").
			WithArgs("Food").
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(5))
		rows := sqlmock.NewRows(vocabularyColumns()).
			AddRow(3, "寿司", "すし", "sushi", "sushi", "noun", "Food", nil, "Neutral", "N4", "Beginner", nil, now, now).
			AddRow(1, "水", "みず", "mizu", "water", "noun", "Food", nil, "Neutral", "N5", "Beginner", nil, now, now)
		mock.ExpectQuery("SELECT \\* FROM vocabulary WHERE 1=1 AND topic = \\? ORDER BY updated_at DESC, id DESC LIMIT \\? OFFSET \\?").
			WithArgs("Food", 2, 0).
			WillReturnRows(rows)

		got, total, err := repo.List(context.Background(), Filter{Topic: "Food"}, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, got, 2)
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vocabulary WHERE 1=1").
			WillReturnError(assert.AnError)

		_, _, err = repo.List(context.Background(), Filter{}, 20, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count vocabulary entries")
	})
}

func TestEntry_HasSurfaceForm(t *testing.T) {
	empty := ""
	kanji := "水"

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{
			name:  "kanji only",
			entry: Entry{Kanji: &kanji},
			want:  true,
		},
		{
			name:  "all nil",
			entry: Entry{},
			want:  false,
		},
		{
			name:  "empty strings do not count",
			entry: Entry{Kanji: &empty, Furigana: &empty},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.HasSurfaceForm())
		})
	}
}
