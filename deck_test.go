package flashdeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckStoreStartsEmpty(t *testing.T) {
	ds := NewDeckStore()
	assert.Nil(t, ds.Current())
	assert.Nil(t, ds.Cards())
	assert.Equal(t, 0, ds.Size())
}

func TestDeckStoreReplaceIsWholesale(t *testing.T) {
	ds := NewDeckStore()

	first := ds.Replace("spanish", testDeck(3))
	require.NotNil(t, first)
	assert.Equal(t, "spanish", first.Topic)
	assert.Equal(t, 3, ds.Size())

	second := ds.Replace("french", testDeck(5))
	assert.Equal(t, "french", second.Topic)
	assert.Equal(t, 5, ds.Size())
	assert.NotEqual(t, first.ID, second.ID)

	// The previous deck object is untouched by the swap
	assert.Len(t, first.Cards, 3)
}

func TestDeckStoreCardsReturnsCopy(t *testing.T) {
	ds := NewDeckStore()
	ds.Replace("topic", testDeck(4))

	cards := ds.Cards()
	cards[0].Term = "mutated"

	assert.Equal(t, "term-0", ds.Cards()[0].Term)
}

func TestDeckStoreClear(t *testing.T) {
	ds := NewDeckStore()
	ds.Replace("topic", testDeck(4))
	ds.Clear()

	assert.Nil(t, ds.Current())
	assert.Equal(t, 0, ds.Size())
}
