package domain

import (
	"errors"
	"time"
)

// DefaultSessionTTL is the canonical bearer-token lifetime.
const DefaultSessionTTL = 14 * 24 * time.Hour

var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("access forbidden")

// Session binds an opaque bearer token to the username and role captured at
// issuance time. Role changes after login do not affect existing sessions.
type Session struct {
	Token     string    `json:"-"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
