// Package template provides sentence template and slot storage.
package template

import "time"

// SentenceTemplate is a sentence skeleton whose pattern contains named
// placeholders of the form {slotName}.
type SentenceTemplate struct {
	ID              int64     `db:"id" json:"id"`
	TemplatePattern string    `db:"template_pattern" json:"template_pattern"`
	Description     *string   `db:"description" json:"description"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Slot is a named, typed blank in a sentence template. The slot name is
// unique within its template and doubles as the placeholder key.
type Slot struct {
	ID              int64   `db:"id" json:"id"`
	TemplateID      int64   `db:"template_id" json:"template_id"`
	SlotName        string  `db:"slot_name" json:"slot_name"`
	GrammaticalRole *string `db:"grammatical_role" json:"grammatical_role"`
	PartOfSpeech    *string `db:"part_of_speech" json:"part_of_speech"`
	IsRequired      bool    `db:"is_required" json:"is_required"`
	OrderIndex      int     `db:"order_index" json:"order_index"`
	Notes           *string `db:"notes" json:"notes"`
}
