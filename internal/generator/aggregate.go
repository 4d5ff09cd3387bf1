package generator

import "github.com/at-ishikawa/sentencelab/internal/vocabulary"

// aggregateDifficulty returns the highest recognized difficulty tier among
// the chosen entries, or nil when none carries a recognized value.
func aggregateDifficulty(entries []vocabulary.Entry) *string {
	var result *string
	maxRank := 0
	for _, entry := range entries {
		if entry.Difficulty == nil {
			continue
		}
		rank, ok := vocabulary.DifficultyRank(*entry.Difficulty)
		if !ok || rank <= maxRank {
			continue
		}
		maxRank = rank
		value := *entry.Difficulty
		result = &value
	}
	return result
}

// aggregateJLPT returns the highest recognized JLPT level among the chosen
// entries, or nil when none carries a recognized value.
func aggregateJLPT(entries []vocabulary.Entry) *string {
	var result *string
	maxRank := 0
	for _, entry := range entries {
		if entry.JLPTLevel == nil {
			continue
		}
		rank, ok := vocabulary.JLPTRank(*entry.JLPTLevel)
		if !ok || rank <= maxRank {
			continue
		}
		maxRank = rank
		value := *entry.JLPTLevel
		result = &value
	}
	return result
}

// PolitenessMixed is the sentinel aggregate when chosen entries carry two
// or more distinct non-empty politeness values.
const PolitenessMixed = "Mixed"

// aggregatePoliteness returns nil when no entry has a politeness value,
// the single distinct value when exactly one appears, and PolitenessMixed
// otherwise.
func aggregatePoliteness(entries []vocabulary.Entry) *string {
	distinct := make(map[string]struct{})
	for _, entry := range entries {
		if entry.PolitenessLevel == nil || *entry.PolitenessLevel == "" {
			continue
		}
		distinct[*entry.PolitenessLevel] = struct{}{}
	}
	switch len(distinct) {
	case 0:
		return nil
	case 1:
		for value := range distinct {
			v := value
			return &v
		}
	}
	mixed := PolitenessMixed
	return &mixed
}
