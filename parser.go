package flashdeck

import "strings"

// ParseFlashcards converts raw generated text into flashcards. The expected
// shape is one "Term: Definition" pair per line. The line is split on the
// first colon only, so any further colons belong to the definition. Lines
// with no colon, or with an empty term or definition after trimming, are
// dropped silently. Input order is preserved.
//
// An empty result is a valid outcome, not an error: callers distinguish
// "nothing parseable" from "the generation call failed".
func ParseFlashcards(raw string) []Flashcard {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	cards := make([]Flashcard, 0, len(lines))
	for _, line := range lines {
		term, definition, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		term = strings.TrimSpace(term)
		definition = strings.TrimSpace(definition)
		if term == "" || definition == "" {
			continue
		}
		cards = append(cards, Flashcard{Term: term, Definition: definition})
	}
	return cards
}
