package flashdeck

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DeckStore holds the current deck of flashcards for one study session.
// The deck is replaced wholesale on each successful generation; cards are
// never mutated in place.
type DeckStore struct {
	mu   sync.RWMutex
	deck *Deck
}

// NewDeckStore creates a new, empty deck store
func NewDeckStore() *DeckStore {
	return &DeckStore{}
}

// Replace swaps in a freshly generated deck and returns it
func (ds *DeckStore) Replace(topic string, cards []Flashcard) *Deck {
	id, err := gonanoid.New()
	if err != nil {
		// nanoid only fails if the system entropy source does
		id = time.Now().Format("20060102150405")
	}

	deck := &Deck{
		ID:        id,
		Topic:     topic,
		Cards:     cards,
		CreatedAt: time.Now(),
	}

	ds.mu.Lock()
	ds.deck = deck
	ds.mu.Unlock()

	return deck
}

// Current returns the current deck, or nil if nothing has been generated yet
func (ds *DeckStore) Current() *Deck {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.deck
}

// Cards returns a copy of the current deck's cards
func (ds *DeckStore) Cards() []Flashcard {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	if ds.deck == nil {
		return nil
	}
	cards := make([]Flashcard, len(ds.deck.Cards))
	copy(cards, ds.deck.Cards)
	return cards
}

// Size returns the number of cards in the current deck
func (ds *DeckStore) Size() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	if ds.deck == nil {
		return 0
	}
	return len(ds.deck.Cards)
}

// Clear drops the current deck
func (ds *DeckStore) Clear() {
	ds.mu.Lock()
	ds.deck = nil
	ds.mu.Unlock()
}
