package mem

import (
	"sync"
	"time"
)

type SessionRevoker interface {
	// Revoke blacklists a session ID until its token would have expired.
	Revoke(sessionID string, ttl time.Duration)

	IsRevoked(sessionID string) bool
}

type entry struct {
	expiresAt time.Time
}

// RevokedSessions is an in-process blacklist of session IDs. Entries are
// dropped lazily once the underlying token has expired anyway.
type RevokedSessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRevokedSessions() *RevokedSessions {
	return &RevokedSessions{
		data: make(map[string]entry),
	}
}

func (s *RevokedSessions) Revoke(sessionID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RevokedSessions) IsRevoked(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return false
	}
	return true
}
