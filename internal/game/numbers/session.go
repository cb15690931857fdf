// Requirements: 2.1, 2.2, 2.3 - Per-user game session lifecycle
package numbers

import (
	"sync"
	"time"
)

// Session is one user's in-progress or completed game.
type Session struct {
	UserID int64

	// NextTarget is the value the user must find next, 1..10.
	// A value above BoardSize means the game is complete.
	NextTarget int

	// Revealed holds the values already found in order. Always a prefix
	// of 1..NextTarget-1; wiped on a mistake reset.
	Revealed map[int]bool

	// Board is assigned once at creation and never mutated.
	Board Board

	StartTime time.Time

	// MistakeHighlight is the value just tapped by mistake, shown until
	// the penalty delay elapses. Zero means no highlight.
	MistakeHighlight int
}

// Completed reports whether all values have been found.
func (s *Session) Completed() bool {
	return s.NextTarget > BoardSize
}

// clone returns a deep copy of the session. Published sessions are
// read-only; state transitions mutate a clone and Replace it.
func (s *Session) clone() *Session {
	c := *s
	c.Revealed = make(map[int]bool, len(s.Revealed))
	for v, ok := range s.Revealed {
		c.Revealed[v] = ok
	}
	return &c
}

// SessionStore owns all game sessions, keyed by user ID. All operations
// are synchronous and in-process; the raw map is never exposed so the
// single-flight invariant stays enforceable at this boundary.
type SessionStore struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Create builds a fresh session for the user, overwriting any prior one.
// Requirements: 2.1
func (st *SessionStore) Create(userID int64) *Session {
	s := &Session{
		UserID:     userID,
		NextTarget: 1,
		Revealed:   make(map[int]bool),
		Board:      NewBoard(),
		StartTime:  time.Now(),
	}

	st.mu.Lock()
	st.sessions[userID] = s
	st.mu.Unlock()

	return s
}

// Get returns the user's session and whether one exists.
func (st *SessionStore) Get(userID int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Replace atomically overwrites the stored session for the user.
// Requirements: 2.2
func (st *SessionStore) Replace(userID int64, s *Session) {
	st.mu.Lock()
	st.sessions[userID] = s
	st.mu.Unlock()
}

// Clear removes the user's session.
// Requirements: 2.3
func (st *SessionStore) Clear(userID int64) {
	st.mu.Lock()
	delete(st.sessions, userID)
	st.mu.Unlock()
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
