// Package tag provides the two-level tag graph and tag-to-vocabulary topic mappings.
package tag

import (
	"time"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

// Tag represents a classification label. A tag is either top-level or
// nested one level under a parent tag.
type Tag struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Type        *string   `db:"type" json:"type"`
	ParentTagID *int64    `db:"parent_tag_id" json:"parent_tag_id"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// IsTopLevel reports whether the tag has no parent.
func (t Tag) IsTopLevel() bool {
	return t.ParentTagID == nil
}

// VocabMapping restricts a tag's eligible vocabulary to a topic and
// optionally a subtopic.
type VocabMapping struct {
	ID            int64   `db:"id" json:"id"`
	TagID         int64   `db:"tag_id" json:"tag_id"`
	VocabTopic    string  `db:"vocab_topic" json:"vocab_topic"`
	VocabSubtopic *string `db:"vocab_subtopic" json:"vocab_subtopic"`
}

// MappingOverview is a joined row for the tag-mapping overview listing.
type MappingOverview struct {
	TagID         int64   `db:"tag_id" json:"tag_id"`
	TagName       string  `db:"tag_name" json:"tag_name"`
	TagType       *string `db:"tag_type" json:"tag_type"`
	ParentTagName *string `db:"parent_tag_name" json:"parent_tag_name"`
	VocabTopic    string  `db:"vocab_topic" json:"vocab_topic"`
	VocabSubtopic *string `db:"vocab_subtopic" json:"vocab_subtopic"`
	Description   *string `db:"description" json:"description"`
}

// MatchesMappings reports whether a vocabulary entry is accepted by a tag's
// mapping set. An empty mapping set accepts every entry; otherwise at least
// one mapping must match the entry's topic, and its subtopic when the
// mapping constrains one.
func MatchesMappings(entry vocabulary.Entry, mappings []VocabMapping) bool {
	if len(mappings) == 0 {
		return true
	}
	for _, m := range mappings {
		if m.VocabTopic == "" {
			return true
		}
		if entry.Topic == nil || *entry.Topic != m.VocabTopic {
			continue
		}
		if m.VocabSubtopic == nil {
			return true
		}
		if entry.Subtopic != nil && *entry.Subtopic == *m.VocabSubtopic {
			return true
		}
	}
	return false
}
