// Package generator implements the sentence generation engine: it resolves
// a template for a tag, fills each slot with a constraint-matching
// vocabulary entry, renders the sentence, aggregates slot metadata, and
// persists the result atomically.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/sentencelab/internal/database"
	"github.com/at-ishikawa/sentencelab/internal/sentence"
	"github.com/at-ishikawa/sentencelab/internal/tag"
	"github.com/at-ishikawa/sentencelab/internal/template"
	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

var (
	// ErrTagRequired is returned when a request has no tag ID.
	ErrTagRequired = errors.New("tagId is required")
	// ErrTemplateNotFound is returned when an explicitly requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrNoActiveTemplates is returned when a tag has no active templates linked to it.
	ErrNoActiveTemplates = errors.New("no active templates linked to this tag")
	// ErrNoSlots is returned when the resolved template has no slots defined.
	ErrNoSlots = errors.New("template has no slots defined")
)

// UnsatisfiableSlotError reports a slot for which no vocabulary entry
// matches the slot's part of speech, the caller's constraints, and the
// tag's topic mappings.
type UnsatisfiableSlotError struct {
	SlotName string
}

func (e *UnsatisfiableSlotError) Error() string {
	return fmt.Sprintf("no vocabulary candidates found for slot %q", e.SlotName)
}

// Request describes one generation call.
type Request struct {
	TagID           int64
	TemplateID      int64 // optional; zero resolves a random active template for the tag
	Difficulty      string
	JLPTLevel       string
	PolitenessLevel string
	DisplayField    DisplayField
}

// Token describes one filled slot, with enough detail for a consumer to
// re-render or re-verify the sentence without a second lookup.
type Token struct {
	SlotName     string  `json:"slotName"`
	VocabularyID int64   `json:"vocabularyId"`
	PartOfSpeech *string `json:"partOfSpeech"`
	Kanji        *string `json:"kanji"`
	Furigana     *string `json:"furigana"`
	Romaji       *string `json:"romaji"`
	Meaning      *string `json:"meaning"`
	Display      string  `json:"display"`
}

// Result is a successfully generated and persisted sentence.
type Result struct {
	ID               int64   `json:"id"`
	TemplateID       int64   `json:"templateId"`
	TagID            int64   `json:"tagId"`
	JapaneseSentence string  `json:"japaneseSentence"`
	EnglishSentence  *string `json:"englishSentence"`
	PolitenessLevel  *string `json:"politenessLevel"`
	JLPTLevel        *string `json:"jlptLevel"`
	Difficulty       *string `json:"difficulty"`
	Tokens           []Token `json:"tokens"`
}

// TagStore provides the tag graph's vocabulary topic mappings.
type TagStore interface {
	MappingsByTag(ctx context.Context, tagID int64) ([]tag.VocabMapping, error)
}

// TemplateStore resolves templates and their slots.
type TemplateStore interface {
	FindByID(ctx context.Context, id int64) (*template.SentenceTemplate, error)
	FindActiveByTag(ctx context.Context, tagID int64) ([]template.SentenceTemplate, error)
	SlotsByTemplate(ctx context.Context, templateID int64) ([]template.Slot, error)
}

// VocabularyStore provides filtered vocabulary candidates.
type VocabularyStore interface {
	Find(ctx context.Context, filter vocabulary.Filter) ([]vocabulary.Entry, error)
}

// SentenceStore persists generation results.
type SentenceStore interface {
	CreateWithBindings(ctx context.Context, tx *sqlx.Tx, s *sentence.GeneratedSentence, bindings []sentence.SlotBinding) error
}

// Engine generates sentences. It is stateless between calls; concurrent
// Generate calls are independent.
type Engine struct {
	db         *sqlx.DB
	tags       TagStore
	templates  TemplateStore
	vocabulary VocabularyStore
	sentences  SentenceStore
	pick       func(n int) int
}

// New creates an Engine. pick selects a uniform random index in [0, n);
// nil uses math/rand. Tests supply a deterministic pick.
func New(db *sqlx.DB, tags TagStore, templates TemplateStore, vocab VocabularyStore, sentences SentenceStore, pick func(n int) int) *Engine {
	if pick == nil {
		pick = rand.IntN
	}
	return &Engine{
		db:         db,
		tags:       tags,
		templates:  templates,
		vocabulary: vocab,
		sentences:  sentences,
		pick:       pick,
	}
}

// Generate resolves a template, fills every slot, renders the sentence,
// and persists it together with its slot bindings in one transaction.
// On any failure nothing is persisted.
func (e *Engine) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.TagID == 0 {
		return nil, ErrTagRequired
	}
	field := req.DisplayField.orDefault()

	tmpl, err := e.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	slots, err := e.templates.SlotsByTemplate(ctx, tmpl.ID)
	if err != nil {
		return nil, fmt.Errorf("load template slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}

	mappings, err := e.tags.MappingsByTag(ctx, req.TagID)
	if err != nil {
		return nil, fmt.Errorf("load tag mappings: %w", err)
	}

	chosen := make([]vocabulary.Entry, 0, len(slots))
	bySlot := make(map[string]vocabulary.Entry, len(slots))
	for _, slot := range slots {
		entry, err := e.fillSlot(ctx, slot, req, mappings)
		if err != nil {
			return nil, err
		}
		chosen = append(chosen, *entry)
		bySlot[slot.SlotName] = *entry
	}

	replacements := make(map[string]string, len(bySlot))
	for name, entry := range bySlot {
		replacements[name] = displayString(entry, field)
	}
	rendered := renderPattern(tmpl.TemplatePattern, replacements)

	tagID := req.TagID
	record := &sentence.GeneratedSentence{
		TemplateID:       tmpl.ID,
		JapaneseSentence: rendered,
		PolitenessLevel:  aggregatePoliteness(chosen),
		JLPTLevel:        aggregateJLPT(chosen),
		Difficulty:       aggregateDifficulty(chosen),
		SourceTagID:      &tagID,
	}
	bindings := make([]sentence.SlotBinding, 0, len(slots))
	for _, slot := range slots {
		bindings = append(bindings, sentence.SlotBinding{
			VocabularyID: bySlot[slot.SlotName].ID,
			SlotName:     slot.SlotName,
		})
	}

	if err := database.RunInTx(ctx, e.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return e.sentences.CreateWithBindings(ctx, tx, record, bindings)
	}); err != nil {
		return nil, fmt.Errorf("persist generated sentence: %w", err)
	}

	tokens := make([]Token, 0, len(slots))
	for _, slot := range slots {
		entry := bySlot[slot.SlotName]
		tokens = append(tokens, Token{
			SlotName:     slot.SlotName,
			VocabularyID: entry.ID,
			PartOfSpeech: entry.PartOfSpeech,
			Kanji:        entry.Kanji,
			Furigana:     entry.Furigana,
			Romaji:       entry.Romaji,
			Meaning:      entry.Meaning,
			Display:      replacements[slot.SlotName],
		})
	}

	return &Result{
		ID:               record.ID,
		TemplateID:       tmpl.ID,
		TagID:            req.TagID,
		JapaneseSentence: rendered,
		PolitenessLevel:  record.PolitenessLevel,
		JLPTLevel:        record.JLPTLevel,
		Difficulty:       record.Difficulty,
		Tokens:           tokens,
	}, nil
}

func (e *Engine) resolveTemplate(ctx context.Context, req Request) (*template.SentenceTemplate, error) {
	if req.TemplateID != 0 {
		tmpl, err := e.templates.FindByID(ctx, req.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("load template: %w", err)
		}
		if tmpl == nil {
			return nil, ErrTemplateNotFound
		}
		return tmpl, nil
	}

	candidates, err := e.templates.FindActiveByTag(ctx, req.TagID)
	if err != nil {
		return nil, fmt.Errorf("load templates for tag: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoActiveTemplates
	}
	return &candidates[e.pick(len(candidates))], nil
}

// fillSlot picks one vocabulary entry for a slot, uniformly at random over
// the candidates that match the slot's part of speech, the caller's
// constraints, and the tag's topic mappings. Choices are independent
// across slots; the same entry may fill two slots in one sentence.
func (e *Engine) fillSlot(ctx context.Context, slot template.Slot, req Request, mappings []tag.VocabMapping) (*vocabulary.Entry, error) {
	// A slot without a part of speech can never match: the equality filter
	// is always applied, and no entry equals an absent value.
	if slot.PartOfSpeech == nil || *slot.PartOfSpeech == "" {
		return nil, &UnsatisfiableSlotError{SlotName: slot.SlotName}
	}

	raw, err := e.vocabulary.Find(ctx, vocabulary.Filter{
		PartOfSpeech:    *slot.PartOfSpeech,
		Difficulty:      req.Difficulty,
		PolitenessLevel: req.PolitenessLevel,
		JLPTLevel:       req.JLPTLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("load vocabulary candidates for slot %q: %w", slot.SlotName, err)
	}

	var candidates []vocabulary.Entry
	for _, entry := range raw {
		if tag.MatchesMappings(entry, mappings) {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return nil, &UnsatisfiableSlotError{SlotName: slot.SlotName}
	}
	return &candidates[e.pick(len(candidates))], nil
}
