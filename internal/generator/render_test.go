package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

func TestDisplayString(t *testing.T) {
	full := vocabulary.Entry{
		Kanji:    ptr("食べる"),
		Furigana: ptr("たべる"),
		Romaji:   ptr("taberu"),
		Meaning:  ptr("to eat"),
	}

	tests := []struct {
		name  string
		entry vocabulary.Entry
		field DisplayField
		want  string
	}{
		{
			name:  "kanji field",
			entry: full,
			field: DisplayKanji,
			want:  "食べる",
		},
		{
			name:  "furigana field",
			entry: full,
			field: DisplayFurigana,
			want:  "たべる",
		},
		{
			name:  "romaji field",
			entry: full,
			field: DisplayRomaji,
			want:  "taberu",
		},
		{
			name:  "meaning field",
			entry: full,
			field: DisplayMeaning,
			want:  "to eat",
		},
		{
			name:  "unknown field defaults to furigana",
			entry: full,
			field: DisplayField("hiragana"),
			want:  "たべる",
		},
		{
			name:  "kanji falls back to furigana",
			entry: vocabulary.Entry{Furigana: ptr("たべる"), Romaji: ptr("taberu")},
			field: DisplayKanji,
			want:  "たべる",
		},
		{
			name:  "kanji falls back past empty furigana to romaji",
			entry: vocabulary.Entry{Furigana: ptr(""), Romaji: ptr("taberu"), Meaning: ptr("to eat")},
			field: DisplayKanji,
			want:  "taberu",
		},
		{
			name:  "kanji falls back to meaning last",
			entry: vocabulary.Entry{Meaning: ptr("to eat")},
			field: DisplayKanji,
			want:  "to eat",
		},
		{
			name:  "romaji falls back to furigana before kanji",
			entry: vocabulary.Entry{Kanji: ptr("食べる"), Furigana: ptr("たべる")},
			field: DisplayRomaji,
			want:  "たべる",
		},
		{
			name:  "meaning falls back to furigana before romaji",
			entry: vocabulary.Entry{Furigana: ptr("たべる"), Romaji: ptr("taberu")},
			field: DisplayMeaning,
			want:  "たべる",
		},
		{
			name:  "furigana falls back to kanji before romaji",
			entry: vocabulary.Entry{Kanji: ptr("食べる"), Romaji: ptr("taberu")},
			field: DisplayFurigana,
			want:  "食べる",
		},
		{
			name:  "no surface form at all",
			entry: vocabulary.Entry{},
			field: DisplayFurigana,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayString(tt.entry, tt.field))
		})
	}
}

func TestRenderPattern(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		replacements map[string]string
		want         string
	}{
		{
			name:         "replaces each placeholder",
			pattern:      "{subject}は{object}を{verb}。",
			replacements: map[string]string{"subject": "わたし", "object": "すし", "verb": "食べます"},
			want:         "わたしはすしを食べます。",
		},
		{
			name:         "repeated placeholder replaced identically",
			pattern:      "{noun}と{noun}",
			replacements: map[string]string{"noun": "ねこ"},
			want:         "ねことねこ",
		},
		{
			name:         "substring slot name does not partially match",
			pattern:      "{verbs}",
			replacements: map[string]string{"verb": "食べます"},
			want:         "{verbs}",
		},
		{
			name:         "unknown placeholder kept literally",
			pattern:      "{subject}は{mystery}",
			replacements: map[string]string{"subject": "わたし"},
			want:         "わたしは{mystery}",
		},
		{
			name:         "unclosed brace kept literally",
			pattern:      "{subject}は{object",
			replacements: map[string]string{"subject": "わたし", "object": "すし"},
			want:         "わたしは{object",
		},
		{
			name:         "stray closing brace kept literally",
			pattern:      "}{subject}",
			replacements: map[string]string{"subject": "わたし"},
			want:         "}わたし",
		},
		{
			name:         "empty braces kept literally",
			pattern:      "a{}b",
			replacements: map[string]string{"subject": "わたし"},
			want:         "a{}b",
		},
		{
			name:         "no placeholders",
			pattern:      "こんにちは。",
			replacements: map[string]string{"subject": "わたし"},
			want:         "こんにちは。",
		},
		{
			name:         "replacement value with braces is not re-scanned",
			pattern:      "{a}{b}",
			replacements: map[string]string{"a": "{b}", "b": "x"},
			want:         "{b}x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderPattern(tt.pattern, tt.replacements))
		})
	}
}
