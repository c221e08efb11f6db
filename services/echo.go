package services

import (
	"sync"
	"time"
)

// echoTTL bounds how long an unconsumed echo is kept before the sweep drops
// it. An echo is normally consumed by the very next page render.
const echoTTL = 15 * time.Minute

// Echo carries a rejected comment submission back to the next render of the
// same page so the visitor does not retype it.
type Echo struct {
	Email  string `json:"email"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

type echoEntry struct {
	echo     Echo
	storedAt time.Time
}

// EchoStore is a read-once, per-session store. Consume removes the entry
// under the same lock that reads it, so when two requests for one session
// race, exactly one sees the echo and the other sees nothing.
type EchoStore struct {
	mu      sync.Mutex
	entries map[string]echoEntry
}

func NewEchoStore() *EchoStore {
	return &EchoStore{entries: make(map[string]echoEntry)}
}

// Put stores the echo for the session, replacing any unconsumed one.
func (s *EchoStore) Put(sessionID string, e Echo) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[sessionID] = echoEntry{echo: e, storedAt: time.Now()}
}

// Consume returns and clears the session's echo. The second read, or a
// concurrent read that lost the race, reports no echo.
func (s *EchoStore) Consume(sessionID string) (Echo, bool) {
	if sessionID == "" {
		return Echo{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok {
		return Echo{}, false
	}
	delete(s.entries, sessionID)
	if time.Since(entry.storedAt) > echoTTL {
		return Echo{}, false
	}
	return entry.echo, true
}

// sweepLocked drops expired entries. Called with the lock held.
func (s *EchoStore) sweepLocked() {
	now := time.Now()
	for id, entry := range s.entries {
		if now.Sub(entry.storedAt) > echoTTL {
			delete(s.entries, id)
		}
	}
}
