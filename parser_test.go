package flashdeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlashcards(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Flashcard
	}{
		{
			name: "single valid line",
			raw:  "Hello: Hola",
			want: []Flashcard{{Term: "Hello", Definition: "Hola"}},
		},
		{
			name: "colons after the first belong to the definition",
			raw:  "A: B: C",
			want: []Flashcard{{Term: "A", Definition: "B: C"}},
		},
		{
			name: "invalid line dropped, order preserved",
			raw:  "Hello: Hola\nGoodbye: Adios\nInvalidLine",
			want: []Flashcard{
				{Term: "Hello", Definition: "Hola"},
				{Term: "Goodbye", Definition: "Adios"},
			},
		},
		{
			name: "line with no colon produces nothing",
			raw:  "no separator here",
			want: []Flashcard{},
		},
		{
			name: "empty term dropped",
			raw:  ": definition only",
			want: []Flashcard{},
		},
		{
			name: "empty definition dropped",
			raw:  "term only:",
			want: []Flashcard{},
		},
		{
			name: "whitespace-only definition dropped",
			raw:  "term:   ",
			want: []Flashcard{},
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Photosynthesis :  the process plants use to convert light into energy  ",
			want: []Flashcard{{Term: "Photosynthesis", Definition: "the process plants use to convert light into energy"}},
		},
		{
			name: "windows line endings",
			raw:  "One: uno\r\nTwo: dos\r\n",
			want: []Flashcard{
				{Term: "One", Definition: "uno"},
				{Term: "Two", Definition: "dos"},
			},
		},
		{
			name: "blank lines skipped",
			raw:  "\n\nOne: uno\n\n",
			want: []Flashcard{{Term: "One", Definition: "uno"}},
		},
		{
			name: "empty input yields empty non-nil result",
			raw:  "",
			want: []Flashcard{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlashcards(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlashcardsPreservesOrder(t *testing.T) {
	raw := "a: 1\nb: 2\nc: 3\nd: 4"
	cards := ParseFlashcards(raw)

	assert.Len(t, cards, 4)
	for i, term := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, term, cards[i].Term)
	}
}
