// Package vocabulary provides vocabulary entry storage and retrieval.
package vocabulary

import "time"

// Entry represents a single vocabulary entry.
// Surface forms are nullable; at least one is expected to be present.
type Entry struct {
	ID              int64     `db:"id" json:"id"`
	Kanji           *string   `db:"kanji" json:"kanji"`
	Furigana        *string   `db:"furigana" json:"furigana"`
	Romaji          *string   `db:"romaji" json:"romaji"`
	Meaning         *string   `db:"meaning" json:"meaning"`
	PartOfSpeech    *string   `db:"part_of_speech" json:"part_of_speech"`
	Topic           *string   `db:"topic" json:"topic"`
	Subtopic        *string   `db:"subtopic" json:"subtopic"`
	PolitenessLevel *string   `db:"politeness_level" json:"politeness_level"`
	JLPTLevel       *string   `db:"jlpt_level" json:"jlpt_level"`
	Difficulty      *string   `db:"difficulty" json:"difficulty"`
	Notes           *string   `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// HasSurfaceForm reports whether at least one surface form is non-empty.
func (e Entry) HasSurfaceForm() bool {
	for _, s := range []*string{e.Kanji, e.Furigana, e.Romaji, e.Meaning} {
		if s != nil && *s != "" {
			return true
		}
	}
	return false
}

// Difficulty tiers, lowest to highest.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// JLPT levels, lowest to highest.
const (
	JLPTN5 = "N5"
	JLPTN4 = "N4"
	JLPTN3 = "N3"
	JLPTN2 = "N2"
	JLPTN1 = "N1"
)

var difficultyRanks = map[string]int{
	DifficultyBeginner:     1,
	DifficultyIntermediate: 2,
	DifficultyAdvanced:     3,
}

var jlptRanks = map[string]int{
	JLPTN5: 1,
	JLPTN4: 2,
	JLPTN3: 3,
	JLPTN2: 4,
	JLPTN1: 5,
}

// DifficultyRank returns the rank of a difficulty tier.
// Unrecognized values report ok=false.
func DifficultyRank(difficulty string) (rank int, ok bool) {
	rank, ok = difficultyRanks[difficulty]
	return rank, ok
}

// JLPTRank returns the rank of a JLPT level.
// Unrecognized values report ok=false.
func JLPTRank(level string) (rank int, ok bool) {
	rank, ok = jlptRanks[level]
	return rank, ok
}
