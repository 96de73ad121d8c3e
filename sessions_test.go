package flashdeck

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusyFlagRefusesSecondGeneration(t *testing.T) {
	ss := &StudySession{ID: "s1", Deck: NewDeckStore()}

	require.NoError(t, ss.BeginGeneration())
	assert.ErrorIs(t, ss.BeginGeneration(), ErrBusy)

	ss.EndGeneration()
	assert.NoError(t, ss.BeginGeneration())
}

func TestRegistryCreateAndGet(t *testing.T) {
	sr := NewSessionRegistry(10)

	ss, err := sr.Create()
	require.NoError(t, err)
	require.NotEmpty(t, ss.ID)

	got, ok := sr.Get(ss.ID)
	require.True(t, ok)
	assert.Same(t, ss, got)

	_, ok = sr.Get("missing")
	assert.False(t, ok)
}

func TestRegistryEvictsOldestAtCapacity(t *testing.T) {
	sr := NewSessionRegistry(3)

	var ids []string
	for i := 0; i < 3; i++ {
		ss, err := sr.Create()
		require.NoError(t, err)
		// Force a distinct lastSeen ordering
		ss.lastSeen = time.Now().Add(time.Duration(i) * time.Millisecond)
		ids = append(ids, ss.ID)
	}

	_, err := sr.Create()
	require.NoError(t, err)

	assert.Equal(t, 3, sr.Size())
	_, ok := sr.Get(ids[0])
	assert.False(t, ok, "oldest session should have been evicted")
	for _, id := range ids[1:] {
		_, ok := sr.Get(id)
		assert.True(t, ok, "session %s should survive", id)
	}
}

func TestRegistryRemove(t *testing.T) {
	sr := NewSessionRegistry(10)
	ss, err := sr.Create()
	require.NoError(t, err)

	sr.Remove(ss.ID)
	_, ok := sr.Get(ss.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, sr.Size())
}

func TestRegistryIDsAreUnique(t *testing.T) {
	sr := NewSessionRegistry(100)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ss, err := sr.Create()
		require.NoError(t, err)
		require.False(t, seen[ss.ID], fmt.Sprintf("duplicate id %s", ss.ID))
		seen[ss.ID] = true
	}
}
