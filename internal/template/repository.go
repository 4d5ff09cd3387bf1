package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for reading sentence templates and slots.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*SentenceTemplate, error)
	FindActiveByTag(ctx context.Context, tagID int64) ([]SentenceTemplate, error)
	SlotsByTemplate(ctx context.Context, templateID int64) ([]Slot, error)
	List(ctx context.Context, tagID int64, limit, offset int) ([]SentenceTemplate, int, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByID returns a template by ID, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*SentenceTemplate, error) {
	var t SentenceTemplate
	err := r.db.GetContext(ctx, &t, "SELECT * FROM sentence_templates WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load sentence template: %w", err)
	}
	return &t, nil
}

// FindActiveByTag returns the active templates associated with a tag
// through taggings with target_type 'template'.
func (r *DBRepository) FindActiveByTag(ctx context.Context, tagID int64) ([]SentenceTemplate, error) {
	var templates []SentenceTemplate
	query := `SELECT st.*
		FROM sentence_templates st
		JOIN taggings tg ON tg.target_id = st.id AND tg.target_type = 'template'
		WHERE tg.tag_id = ? AND st.is_active = 1`
	if err := r.db.SelectContext(ctx, &templates, query, tagID); err != nil {
		return nil, fmt.Errorf("load active templates for tag: %w", err)
	}
	return templates, nil
}

// SlotsByTemplate returns a template's slots in fill order.
func (r *DBRepository) SlotsByTemplate(ctx context.Context, templateID int64) ([]Slot, error) {
	var slots []Slot
	query := "SELECT * FROM template_slots WHERE template_id = ? ORDER BY order_index ASC, id ASC"
	if err := r.db.SelectContext(ctx, &slots, query, templateID); err != nil {
		return nil, fmt.Errorf("load template slots: %w", err)
	}
	return slots, nil
}

// List returns a page of templates, most recently updated first, with the
// total count. A non-zero tagID restricts to templates associated with that tag.
func (r *DBRepository) List(ctx context.Context, tagID int64, limit, offset int) ([]SentenceTemplate, int, error) {
	where := "1=1"
	var args []interface{}
	if tagID != 0 {
		where += " AND st.id IN (SELECT target_id FROM taggings WHERE tag_id = ? AND target_type = 'template')"
		args = append(args, tagID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM sentence_templates st WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count sentence templates: %w", err)
	}

	var templates []SentenceTemplate
	query := "SELECT st.* FROM sentence_templates st WHERE " + where +
		" ORDER BY st.updated_at DESC, st.id DESC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &templates, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("load sentence templates: %w", err)
	}
	return templates, total, nil
}
