package mem

import (
	"testing"
	"time"
)

func TestRevokedSessions(t *testing.T) {
	s := NewRevokedSessions()

	if s.IsRevoked("missing") {
		t.Error("unknown session reported revoked")
	}

	s.Revoke("sess-1", time.Minute)
	if !s.IsRevoked("sess-1") {
		t.Error("revoked session not reported revoked")
	}

	s.Revoke("sess-2", -time.Second)
	if s.IsRevoked("sess-2") {
		t.Error("expired revocation should no longer apply")
	}
}
