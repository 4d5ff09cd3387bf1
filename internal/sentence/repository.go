package sentence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/sentencelab/internal/database"
)

// ErrNotFound is returned when no generated sentence has the requested ID.
var ErrNotFound = errors.New("generated sentence not found")

// Repository defines operations for managing generated sentences.
type Repository interface {
	CreateWithBindings(ctx context.Context, tx *sqlx.Tx, s *GeneratedSentence, bindings []SlotBinding) error
	FindByID(ctx context.Context, id int64) (*GeneratedSentence, error)
	List(ctx context.Context, filter ListFilter) ([]GeneratedSentence, int, error)
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	AddPractice(ctx context.Context, entry *PracticeEntry) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// CreateWithBindings inserts a generated sentence and its slot bindings
// within the caller's transaction. The sentence's ID and each binding's
// GeneratedSentenceID are set on success.
func (r *DBRepository) CreateWithBindings(ctx context.Context, tx *sqlx.Tx, s *GeneratedSentence, bindings []SlotBinding) error {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO generated_sentences
			(template_id, japanese_sentence, english_sentence, politeness_level, jlpt_level, difficulty, source_tag_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.TemplateID, s.JapaneseSentence, s.EnglishSentence, s.PolitenessLevel, s.JLPTLevel, s.Difficulty, s.SourceTagID)
	if err != nil {
		return fmt.Errorf("insert generated sentence: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get generated sentence insert ID: %w", err)
	}
	s.ID = id

	if len(bindings) == 0 {
		return nil
	}

	query := database.BuildMultiRowInsert(
		"generated_sentence_vocabulary",
		[]string{"generated_sentence_id", "vocabulary_id", "slot_name"},
		len(bindings),
	)
	var args []interface{}
	for i := range bindings {
		bindings[i].GeneratedSentenceID = id
		args = append(args, bindings[i].GeneratedSentenceID, bindings[i].VocabularyID, bindings[i].SlotName)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert slot bindings: %w", err)
	}
	return nil
}

// FindByID returns a generated sentence by ID, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*GeneratedSentence, error) {
	var s GeneratedSentence
	err := r.db.GetContext(ctx, &s, "SELECT * FROM generated_sentences WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load generated sentence: %w", err)
	}
	return &s, nil
}

// List returns a page of generated sentences, newest first, with the total count.
func (r *DBRepository) List(ctx context.Context, filter ListFilter) ([]GeneratedSentence, int, error) {
	where := "1=1"
	var args []interface{}
	if filter.TagID != 0 {
		where += " AND gs.source_tag_id = ?"
		args = append(args, filter.TagID)
	}
	if filter.PolitenessLevel != "" {
		where += " AND gs.politeness_level = ?"
		args = append(args, filter.PolitenessLevel)
	}
	if filter.Difficulty != "" {
		where += " AND gs.difficulty = ?"
		args = append(args, filter.Difficulty)
	}
	if filter.FavoriteOnly {
		where += " AND gs.is_favorite = 1"
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM generated_sentences gs WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count generated sentences: %w", err)
	}

	var sentences []GeneratedSentence
	query := `SELECT gs.*, t.name AS tag_name
		FROM generated_sentences gs
		LEFT JOIN tags t ON t.id = gs.source_tag_id
		WHERE ` + where + `
		ORDER BY gs.created_at DESC, gs.id DESC
		LIMIT ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &sentences, query, append(args, filter.Limit, filter.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("load generated sentences: %w", err)
	}
	return sentences, total, nil
}

// SetFavorite updates a sentence's favorite flag. Returns ErrNotFound when
// no sentence has the given ID. Setting the same value twice is a no-op
// beyond the first call.
func (r *DBRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	// Existence is checked separately so that setting an unchanged flag
	// stays idempotent: MySQL reports zero affected rows for no-op updates.
	var exists int
	err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM generated_sentences WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load generated sentence: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		"UPDATE generated_sentences SET is_favorite = ? WHERE id = ?", favorite, id); err != nil {
		return fmt.Errorf("update favorite flag: %w", err)
	}
	return nil
}

// AddPractice appends a practice history entry. The entry's ID is set on success.
func (r *DBRepository) AddPractice(ctx context.Context, entry *PracticeEntry) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO practice_history (generated_sentence_id, result, notes) VALUES (?, ?, ?)",
		entry.GeneratedSentenceID, entry.Result, entry.Notes)
	if err != nil {
		return fmt.Errorf("insert practice history entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get practice history insert ID: %w", err)
	}
	entry.ID = id
	return nil
}
