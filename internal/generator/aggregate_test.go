package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

func TestAggregateDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		entries []vocabulary.Entry
		want    *string
	}{
		{
			name: "highest tier wins regardless of order",
			entries: []vocabulary.Entry{
				{Difficulty: ptr(vocabulary.DifficultyAdvanced)},
				{Difficulty: ptr(vocabulary.DifficultyBeginner)},
				{Difficulty: ptr(vocabulary.DifficultyIntermediate)},
			},
			want: ptr(vocabulary.DifficultyAdvanced),
		},
		{
			name: "single value",
			entries: []vocabulary.Entry{
				{Difficulty: ptr(vocabulary.DifficultyBeginner)},
			},
			want: ptr(vocabulary.DifficultyBeginner),
		},
		{
			name: "unrecognized values are ignored",
			entries: []vocabulary.Entry{
				{Difficulty: ptr("Expert")},
				{Difficulty: ptr(vocabulary.DifficultyBeginner)},
			},
			want: ptr(vocabulary.DifficultyBeginner),
		},
		{
			name: "nil when nothing is recognized",
			entries: []vocabulary.Entry{
				{Difficulty: ptr("Expert")},
				{},
			},
			want: nil,
		},
		{
			name:    "empty input",
			entries: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateDifficulty(tt.entries))
		})
	}
}

func TestAggregateJLPT(t *testing.T) {
	tests := []struct {
		name    string
		entries []vocabulary.Entry
		want    *string
	}{
		{
			name: "N1 outranks lower levels",
			entries: []vocabulary.Entry{
				{JLPTLevel: ptr(vocabulary.JLPTN5)},
				{JLPTLevel: ptr(vocabulary.JLPTN1)},
				{JLPTLevel: ptr(vocabulary.JLPTN3)},
			},
			want: ptr(vocabulary.JLPTN1),
		},
		{
			name: "N4 outranks N5",
			entries: []vocabulary.Entry{
				{JLPTLevel: ptr(vocabulary.JLPTN4)},
				{JLPTLevel: ptr(vocabulary.JLPTN5)},
			},
			want: ptr(vocabulary.JLPTN4),
		},
		{
			name: "unrecognized values are ignored",
			entries: []vocabulary.Entry{
				{JLPTLevel: ptr("N6")},
				{JLPTLevel: ptr(vocabulary.JLPTN5)},
			},
			want: ptr(vocabulary.JLPTN5),
		},
		{
			name: "nil entries contribute nothing",
			entries: []vocabulary.Entry{
				{},
				{},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateJLPT(tt.entries))
		})
	}
}

func TestAggregatePoliteness(t *testing.T) {
	tests := []struct {
		name    string
		entries []vocabulary.Entry
		want    *string
	}{
		{
			name: "single distinct value",
			entries: []vocabulary.Entry{
				{PolitenessLevel: ptr("Polite")},
				{PolitenessLevel: ptr("Polite")},
				{},
			},
			want: ptr("Polite"),
		},
		{
			name: "two distinct values are mixed",
			entries: []vocabulary.Entry{
				{PolitenessLevel: ptr("Polite")},
				{PolitenessLevel: ptr("Casual")},
			},
			want: ptr(PolitenessMixed),
		},
		{
			name: "empty strings are ignored",
			entries: []vocabulary.Entry{
				{PolitenessLevel: ptr("")},
				{PolitenessLevel: ptr("Casual")},
			},
			want: ptr("Casual"),
		},
		{
			name: "nil when no entry has a value",
			entries: []vocabulary.Entry{
				{},
				{PolitenessLevel: ptr("")},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregatePoliteness(tt.entries))
		})
	}
}
