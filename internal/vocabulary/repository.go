package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Filter narrows vocabulary candidates by equality on linguistic attributes.
// Empty fields apply no restriction.
type Filter struct {
	PartOfSpeech    string
	Topic           string
	Subtopic        string
	PolitenessLevel string
	JLPTLevel       string
	Difficulty      string
}

// Repository defines operations for reading vocabulary entries.
type Repository interface {
	Find(ctx context.Context, filter Filter) ([]Entry, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Entry, int, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (f Filter) whereClause() (string, []interface{}) {
	conditions := []string{"1=1"}
	var args []interface{}

	add := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, column+" = ?")
		args = append(args, value)
	}
	add("part_of_speech", f.PartOfSpeech)
	add("topic", f.Topic)
	add("subtopic", f.Subtopic)
	add("politeness_level", f.PolitenessLevel)
	add("jlpt_level", f.JLPTLevel)
	add("difficulty", f.Difficulty)

	return strings.Join(conditions, " AND "), args
}

// Find returns all entries matching the filter, unordered.
func (r *DBRepository) Find(ctx context.Context, filter Filter) ([]Entry, error) {
	where, args := filter.whereClause()

	var entries []Entry
	query := "SELECT * FROM vocabulary WHERE " + where
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("load vocabulary entries: %w", err)
	}
	return entries, nil
}

// List returns a page of entries matching the filter, newest first, with the total count.
func (r *DBRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]Entry, int, error) {
	where, args := filter.whereClause()

	var total int
	countQuery := "SELECT COUNT(*) FROM vocabulary WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count vocabulary entries: %w", err)
	}

	var entries []Entry
	query := "SELECT * FROM vocabulary WHERE " + where + " ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &entries, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("load vocabulary entries: %w", err)
	}
	return entries, total, nil
}
