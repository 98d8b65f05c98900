package game

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore is the process-wide session map. Each session carries its own
// mutation lock, so concurrent turns against different sessions never
// contend; concurrent turns against the same session are serialized. The
// map lock itself is only held for lookups and inserts, never across
// content-provider calls.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*storedSession
}

type storedSession struct {
	mu   sync.Mutex
	sess *Session
}

// NewSessionStore creates an empty store. Constructed once at process start
// and injected; there is no package-level singleton.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*storedSession)}
}

// Create registers a new session for the player and returns its id. The
// session starts at turn 1, unfinished, with empty histories.
func (st *SessionStore) Create(player PlayerProfile) string {
	id := uuid.NewString()
	sess := &Session{
		ID:     id,
		Player: player,
		Turn:   1,
	}

	st.mu.Lock()
	st.sessions[id] = &storedSession{sess: sess}
	st.mu.Unlock()
	return id
}

// With runs fn with exclusive access to the session. It is the only way to
// read or mutate stored state, which makes the at-most-one-in-flight
// guarantee hold for every caller.
func (st *SessionStore) With(id string, fn func(*Session) error) error {
	st.mu.RLock()
	stored, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	stored.mu.Lock()
	defer stored.mu.Unlock()
	return fn(stored.sess)
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
