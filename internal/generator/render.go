package generator

import (
	"strings"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

// DisplayField selects which surface form fills placeholders in the
// rendered sentence.
type DisplayField string

const (
	DisplayKanji    DisplayField = "kanji"
	DisplayFurigana DisplayField = "furigana"
	DisplayRomaji   DisplayField = "romaji"
	DisplayMeaning  DisplayField = "meaning"
)

func (f DisplayField) orDefault() DisplayField {
	switch f {
	case DisplayKanji, DisplayFurigana, DisplayRomaji, DisplayMeaning:
		return f
	}
	return DisplayFurigana
}

// displayString renders an entry in the requested field, falling back to
// the other surface forms when it is empty. Each field prefers itself,
// then furigana, kanji, romaji, meaning in that relative order.
func displayString(entry vocabulary.Entry, field DisplayField) string {
	var chain []*string
	switch field {
	case DisplayKanji:
		chain = []*string{entry.Kanji, entry.Furigana, entry.Romaji, entry.Meaning}
	case DisplayRomaji:
		chain = []*string{entry.Romaji, entry.Furigana, entry.Kanji, entry.Meaning}
	case DisplayMeaning:
		chain = []*string{entry.Meaning, entry.Furigana, entry.Romaji, entry.Kanji}
	default:
		chain = []*string{entry.Furigana, entry.Kanji, entry.Romaji, entry.Meaning}
	}
	for _, s := range chain {
		if s != nil && *s != "" {
			return *s
		}
	}
	return ""
}

// renderPattern substitutes {name} placeholders in a single pass over the
// pattern. Placeholder names are matched exactly against the replacement
// map, so a slot name that is a substring of another can never cause a
// partial replacement. Unknown placeholders and stray braces are kept
// literally. All occurrences of the same name are replaced identically.
func renderPattern(pattern string, replacements map[string]string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		open := strings.IndexByte(pattern[i:], '{')
		if open < 0 {
			b.WriteString(pattern[i:])
			break
		}
		open += i
		b.WriteString(pattern[i:open])

		closing := strings.IndexByte(pattern[open:], '}')
		if closing < 0 {
			b.WriteString(pattern[open:])
			break
		}
		closing += open

		name := pattern[open+1 : closing]
		if value, ok := replacements[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(pattern[open : closing+1])
		}
		i = closing + 1
	}
	return b.String()
}
