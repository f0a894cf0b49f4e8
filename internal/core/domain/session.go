package domain

import "time"

// SessionTTL is how long a session stays valid after creation.
const SessionTTL = 24 * time.Hour

// Session ties a user to an opaque client-held token. At most one live
// session exists per user; creating a new one replaces the old.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is logically invalid at now,
// regardless of whether the store has physically removed it yet.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
