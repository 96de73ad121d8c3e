package flashdeck

import (
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrBusy is returned when a generation is requested for a session that
// already has one in flight.
var ErrBusy = errors.New("a generation is already in progress")

// StudySession ties one browser to its current deck and, when running, its
// quiz. The generating flag is the whole concurrency discipline for the
// deck: while it is set, further generation requests for this session are
// refused, so two in-flight calls against the same deck are structurally
// impossible.
type StudySession struct {
	mu         sync.Mutex
	ID         string
	Deck       *DeckStore
	Quiz       *QuizSession
	generating bool
	lastSeen   time.Time
}

// BeginGeneration marks the session busy. It fails with ErrBusy if a
// generation is already outstanding.
func (ss *StudySession) BeginGeneration() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.generating {
		return ErrBusy
	}
	ss.generating = true
	return nil
}

// EndGeneration clears the busy flag
func (ss *StudySession) EndGeneration() {
	ss.mu.Lock()
	ss.generating = false
	ss.mu.Unlock()
}

// Lock takes the session's mutex for a quiz or deck operation. Never held
// across the generation network call.
func (ss *StudySession) Lock() {
	ss.mu.Lock()
}

// Unlock releases the session's mutex
func (ss *StudySession) Unlock() {
	ss.mu.Unlock()
}

// SessionRegistry maps session IDs from the browser cookie to their
// in-memory study sessions. Size is capped; the stalest session is evicted
// inline on insert, so no background sweeper is needed.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*StudySession
	maxSize  int
}

// NewSessionRegistry creates a registry holding at most maxSize sessions
func NewSessionRegistry(maxSize int) *SessionRegistry {
	if maxSize <= 0 {
		maxSize = 1024
	}
	return &SessionRegistry{
		sessions: make(map[string]*StudySession),
		maxSize:  maxSize,
	}
}

// Get retrieves a session by ID and refreshes its last-seen time
func (sr *SessionRegistry) Get(id string) (*StudySession, bool) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	ss, ok := sr.sessions[id]
	if ok {
		ss.lastSeen = time.Now()
	}
	return ss, ok
}

// Create makes a new study session with a fresh random ID
func (sr *SessionRegistry) Create() (*StudySession, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	ss := &StudySession{
		ID:       id,
		Deck:     NewDeckStore(),
		lastSeen: time.Now(),
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	if len(sr.sessions) >= sr.maxSize {
		sr.evictOldestLocked()
	}
	sr.sessions[id] = ss
	return ss, nil
}

// Remove drops a session from the registry
func (sr *SessionRegistry) Remove(id string) {
	sr.mu.Lock()
	delete(sr.sessions, id)
	sr.mu.Unlock()
}

// Size returns the number of live sessions
func (sr *SessionRegistry) Size() int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return len(sr.sessions)
}

func (sr *SessionRegistry) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, ss := range sr.sessions {
		if oldestID == "" || ss.lastSeen.Before(oldest) {
			oldestID = id
			oldest = ss.lastSeen
		}
	}
	if oldestID != "" {
		delete(sr.sessions, oldestID)
	}
}
