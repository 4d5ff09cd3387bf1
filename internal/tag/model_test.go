package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMatchesMappings(t *testing.T) {
	food := vocabulary.Entry{Topic: ptr("Food"), Subtopic: ptr("Fruit")}

	tests := []struct {
		name     string
		entry    vocabulary.Entry
		mappings []VocabMapping
		want     bool
	}{
		{
			name:     "empty mapping set accepts everything",
			entry:    vocabulary.Entry{},
			mappings: nil,
			want:     true,
		},
		{
			name:     "topic matches, no subtopic constraint",
			entry:    food,
			mappings: []VocabMapping{{VocabTopic: "Food"}},
			want:     true,
		},
		{
			name:     "topic mismatch",
			entry:    food,
			mappings: []VocabMapping{{VocabTopic: "Travel"}},
			want:     false,
		},
		{
			name:     "entry without topic never matches a topic constraint",
			entry:    vocabulary.Entry{},
			mappings: []VocabMapping{{VocabTopic: "Food"}},
			want:     false,
		},
		{
			name:     "subtopic constraint matches",
			entry:    food,
			mappings: []VocabMapping{{VocabTopic: "Food", VocabSubtopic: ptr("Fruit")}},
			want:     true,
		},
		{
			name:     "subtopic constraint mismatch",
			entry:    food,
			mappings: []VocabMapping{{VocabTopic: "Food", VocabSubtopic: ptr("Vegetables")}},
			want:     false,
		},
		{
			name:     "entry without subtopic fails a subtopic constraint",
			entry:    vocabulary.Entry{Topic: ptr("Food")},
			mappings: []VocabMapping{{VocabTopic: "Food", VocabSubtopic: ptr("Fruit")}},
			want:     false,
		},
		{
			name:  "any mapping may accept",
			entry: food,
			mappings: []VocabMapping{
				{VocabTopic: "Travel"},
				{VocabTopic: "Food", VocabSubtopic: ptr("Fruit")},
			},
			want: true,
		},
		{
			name:     "mapping with empty topic accepts everything",
			entry:    vocabulary.Entry{},
			mappings: []VocabMapping{{VocabTopic: ""}},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesMappings(tt.entry, tt.mappings))
		})
	}
}

func TestTag_IsTopLevel(t *testing.T) {
	assert.True(t, Tag{Name: "Food"}.IsTopLevel())
	assert.False(t, Tag{Name: "Restaurant", ParentTagID: ptr(int64(1))}.IsTopLevel())
}
