// Package seed imports tags, vocabulary, and sentence templates from a
// YAML fixture file into the database.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/sentencelab/internal/database"
)

// Data is the root of a seed file.
type Data struct {
	Tags       []TagSeed      `yaml:"tags"`
	Vocabulary []VocabSeed    `yaml:"vocabulary"`
	Templates  []TemplateSeed `yaml:"templates"`
}

// TagSeed declares a tag, optionally nested under a parent tag by name,
// with its vocabulary topic mappings.
type TagSeed struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	Parent      string        `yaml:"parent"`
	Description string        `yaml:"description"`
	Mappings    []MappingSeed `yaml:"mappings"`
}

// MappingSeed declares one tag-to-vocabulary topic mapping.
type MappingSeed struct {
	Topic    string `yaml:"topic"`
	Subtopic string `yaml:"subtopic"`
}

// VocabSeed declares a vocabulary entry.
type VocabSeed struct {
	Kanji           string `yaml:"kanji"`
	Furigana        string `yaml:"furigana"`
	Romaji          string `yaml:"romaji"`
	Meaning         string `yaml:"meaning"`
	PartOfSpeech    string `yaml:"part_of_speech"`
	Topic           string `yaml:"topic"`
	Subtopic        string `yaml:"subtopic"`
	PolitenessLevel string `yaml:"politeness_level"`
	JLPTLevel       string `yaml:"jlpt_level"`
	Difficulty      string `yaml:"difficulty"`
	Notes           string `yaml:"notes"`
}

// TemplateSeed declares a sentence template, its slots, and the tags it is
// associated with (by name).
type TemplateSeed struct {
	Pattern     string     `yaml:"pattern"`
	Description string     `yaml:"description"`
	Active      *bool      `yaml:"active"`
	Tags        []string   `yaml:"tags"`
	Slots       []SlotSeed `yaml:"slots"`
}

// SlotSeed declares one template slot.
type SlotSeed struct {
	Name            string `yaml:"name"`
	PartOfSpeech    string `yaml:"part_of_speech"`
	GrammaticalRole string `yaml:"grammatical_role"`
	Required        *bool  `yaml:"required"`
	Order           int    `yaml:"order"`
	Notes           string `yaml:"notes"`
}

// Result tracks counts for one import run.
type Result struct {
	Tags       int
	Mappings   int
	Vocabulary int
	Templates  int
	Slots      int
	Taggings   int
}

// Load parses a seed file.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse parses seed data from a reader and validates it.
func Parse(r io.Reader) (*Data, error) {
	var data Data
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	tagNames := make(map[string]bool, len(d.Tags))
	for _, t := range d.Tags {
		if t.Name == "" {
			return fmt.Errorf("tag without a name")
		}
		if tagNames[t.Name] {
			return fmt.Errorf("duplicate tag name %q", t.Name)
		}
		tagNames[t.Name] = true
	}
	for _, t := range d.Tags {
		if t.Parent != "" && !tagNames[t.Parent] {
			return fmt.Errorf("tag %q references unknown parent %q", t.Name, t.Parent)
		}
	}

	for i, v := range d.Vocabulary {
		if v.Kanji == "" && v.Furigana == "" && v.Romaji == "" && v.Meaning == "" {
			return fmt.Errorf("vocabulary entry %d has no surface form", i)
		}
	}

	for i, tmpl := range d.Templates {
		if tmpl.Pattern == "" {
			return fmt.Errorf("template %d has no pattern", i)
		}
		slotNames := make(map[string]bool, len(tmpl.Slots))
		for _, slot := range tmpl.Slots {
			if slot.Name == "" {
				return fmt.Errorf("template %q has a slot without a name", tmpl.Pattern)
			}
			if slotNames[slot.Name] {
				return fmt.Errorf("template %q has duplicate slot %q", tmpl.Pattern, slot.Name)
			}
			slotNames[slot.Name] = true
		}
		for _, name := range tmpl.Tags {
			if !tagNames[name] {
				return fmt.Errorf("template %q references unknown tag %q", tmpl.Pattern, name)
			}
		}
	}
	return nil
}

// Importer writes seed data to the database.
type Importer struct {
	db *sqlx.DB
}

// NewImporter creates a new Importer.
func NewImporter(db *sqlx.DB) *Importer {
	return &Importer{db: db}
}

// Import inserts all seed data in a single transaction.
func (imp *Importer) Import(ctx context.Context, data *Data) (*Result, error) {
	result := &Result{}

	err := database.RunInTx(ctx, imp.db, func(ctx context.Context, tx *sqlx.Tx) error {
		tagIDs := make(map[string]int64, len(data.Tags))

		// Parents first so children can reference them.
		for _, pass := range []bool{true, false} {
			for _, t := range data.Tags {
				if (t.Parent == "") != pass {
					continue
				}
				var parentID interface{}
				if t.Parent != "" {
					parentID = tagIDs[t.Parent]
				}
				res, err := tx.ExecContext(ctx,
					"INSERT INTO tags (name, type, parent_tag_id, description) VALUES (?, ?, ?, ?)",
					t.Name, nullable(t.Type), parentID, nullable(t.Description))
				if err != nil {
					return fmt.Errorf("insert tag %q: %w", t.Name, err)
				}
				id, err := res.LastInsertId()
				if err != nil {
					return fmt.Errorf("get tag insert ID: %w", err)
				}
				tagIDs[t.Name] = id
				result.Tags++

				for _, m := range t.Mappings {
					if _, err := tx.ExecContext(ctx,
						"INSERT INTO tag_vocab_mapping (tag_id, vocab_topic, vocab_subtopic) VALUES (?, ?, ?)",
						id, m.Topic, nullable(m.Subtopic)); err != nil {
						return fmt.Errorf("insert mapping for tag %q: %w", t.Name, err)
					}
					result.Mappings++
				}
			}
		}

		for _, v := range data.Vocabulary {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO vocabulary
					(kanji, furigana, romaji, meaning, part_of_speech, topic, subtopic, politeness_level, jlpt_level, difficulty, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				nullable(v.Kanji), nullable(v.Furigana), nullable(v.Romaji), nullable(v.Meaning),
				nullable(v.PartOfSpeech), nullable(v.Topic), nullable(v.Subtopic),
				nullable(v.PolitenessLevel), nullable(v.JLPTLevel), nullable(v.Difficulty), nullable(v.Notes)); err != nil {
				return fmt.Errorf("insert vocabulary entry: %w", err)
			}
			result.Vocabulary++
		}

		for _, tmpl := range data.Templates {
			active := true
			if tmpl.Active != nil {
				active = *tmpl.Active
			}
			res, err := tx.ExecContext(ctx,
				"INSERT INTO sentence_templates (template_pattern, description, is_active) VALUES (?, ?, ?)",
				tmpl.Pattern, nullable(tmpl.Description), active)
			if err != nil {
				return fmt.Errorf("insert template %q: %w", tmpl.Pattern, err)
			}
			templateID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("get template insert ID: %w", err)
			}
			result.Templates++

			for _, slot := range tmpl.Slots {
				required := true
				if slot.Required != nil {
					required = *slot.Required
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO template_slots
						(template_id, slot_name, grammatical_role, part_of_speech, is_required, order_index, notes)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					templateID, slot.Name, nullable(slot.GrammaticalRole), nullable(slot.PartOfSpeech),
					required, slot.Order, nullable(slot.Notes)); err != nil {
					return fmt.Errorf("insert slot %q for template %q: %w", slot.Name, tmpl.Pattern, err)
				}
				result.Slots++
			}

			for _, name := range tmpl.Tags {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO taggings (tag_id, target_type, target_id) VALUES (?, 'template', ?)",
					tagIDs[name], templateID); err != nil {
					return fmt.Errorf("insert tagging for template %q: %w", tmpl.Pattern, err)
				}
				result.Taggings++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
