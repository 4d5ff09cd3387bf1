// Package sentence provides storage for generated sentences, their slot
// bindings, and practice history.
package sentence

import "time"

// GeneratedSentence is one persisted generation result.
// EnglishSentence is always NULL; translation generation is future work.
type GeneratedSentence struct {
	ID               int64     `db:"id" json:"id"`
	TemplateID       int64     `db:"template_id" json:"template_id"`
	JapaneseSentence string    `db:"japanese_sentence" json:"japanese_sentence"`
	EnglishSentence  *string   `db:"english_sentence" json:"english_sentence"`
	PolitenessLevel  *string   `db:"politeness_level" json:"politeness_level"`
	JLPTLevel        *string   `db:"jlpt_level" json:"jlpt_level"`
	Difficulty       *string   `db:"difficulty" json:"difficulty"`
	SourceTagID      *int64    `db:"source_tag_id" json:"source_tag_id"`
	IsFavorite       bool      `db:"is_favorite" json:"is_favorite"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`

	// TagName is populated only by List, which joins the tags table.
	TagName *string `db:"tag_name" json:"tag_name,omitempty"`
}

// SlotBinding associates a generated sentence's slot with the vocabulary
// entry chosen for it.
type SlotBinding struct {
	ID                  int64     `db:"id" json:"id"`
	GeneratedSentenceID int64     `db:"generated_sentence_id" json:"generated_sentence_id"`
	VocabularyID        int64     `db:"vocabulary_id" json:"vocabulary_id"`
	SlotName            string    `db:"slot_name" json:"slot_name"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// PracticeEntry records one review of a generated sentence. Append-only.
type PracticeEntry struct {
	ID                  int64     `db:"id" json:"id"`
	GeneratedSentenceID int64     `db:"generated_sentence_id" json:"generated_sentence_id"`
	PracticedAt         time.Time `db:"practiced_at" json:"practiced_at"`
	Result              *string   `db:"result" json:"result"`
	Notes               *string   `db:"notes" json:"notes"`
}

// ListFilter narrows the generated sentence listing.
type ListFilter struct {
	TagID           int64
	PolitenessLevel string
	Difficulty      string
	FavoriteOnly    bool
	Limit           int
	Offset          int
}
