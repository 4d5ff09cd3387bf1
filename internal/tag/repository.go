package tag

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for reading the tag graph.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Tag, error)
	FindAll(ctx context.Context, search, tagType string) ([]Tag, error)
	Children(ctx context.Context, id int64) ([]Tag, error)
	MappingsByTag(ctx context.Context, tagID int64) ([]VocabMapping, error)
	ListMappings(ctx context.Context) ([]MappingOverview, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByID returns a tag by ID, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Tag, error) {
	var t Tag
	err := r.db.GetContext(ctx, &t, "SELECT * FROM tags WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load tag: %w", err)
	}
	return &t, nil
}

// FindAll returns tags ordered by name, optionally filtered by a name
// search and a tag type.
func (r *DBRepository) FindAll(ctx context.Context, search, tagType string) ([]Tag, error) {
	query := "SELECT * FROM tags WHERE 1=1"
	var args []interface{}
	if tagType != "" {
		query += " AND type = ?"
		args = append(args, tagType)
	}
	if search != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY name ASC"

	var tags []Tag
	if err := r.db.SelectContext(ctx, &tags, query, args...); err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	return tags, nil
}

// Children returns the direct children of a tag.
func (r *DBRepository) Children(ctx context.Context, id int64) ([]Tag, error) {
	var tags []Tag
	if err := r.db.SelectContext(ctx, &tags,
		"SELECT * FROM tags WHERE parent_tag_id = ? ORDER BY name ASC", id); err != nil {
		return nil, fmt.Errorf("load child tags: %w", err)
	}
	return tags, nil
}

// MappingsByTag returns the vocabulary topic mappings owned by a tag.
// An empty result means the tag accepts any vocabulary topic.
func (r *DBRepository) MappingsByTag(ctx context.Context, tagID int64) ([]VocabMapping, error) {
	var mappings []VocabMapping
	if err := r.db.SelectContext(ctx, &mappings,
		"SELECT * FROM tag_vocab_mapping WHERE tag_id = ?", tagID); err != nil {
		return nil, fmt.Errorf("load tag vocab mappings: %w", err)
	}
	return mappings, nil
}

// ListMappings returns the joined tag-mapping overview ordered by tag name.
func (r *DBRepository) ListMappings(ctx context.Context) ([]MappingOverview, error) {
	var rows []MappingOverview
	query := `SELECT
			t.id AS tag_id,
			t.name AS tag_name,
			t.type AS tag_type,
			parent.name AS parent_tag_name,
			m.vocab_topic,
			m.vocab_subtopic,
			t.description
		FROM tag_vocab_mapping m
		JOIN tags t ON t.id = m.tag_id
		LEFT JOIN tags parent ON parent.id = t.parent_tag_id
		ORDER BY t.name ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load tag mapping overview: %w", err)
	}
	return rows, nil
}
