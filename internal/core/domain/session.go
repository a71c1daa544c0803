package domain

import "time"

// Session is the authenticated user context supplied by the session
// provider. The wizard requires a session with a modifying role.
type Session struct {
	// UserID is the identifier of the signed-in user.
	UserID string

	// Email is the account email, shown in `atlas auth status`.
	Email string

	// Role is the subscription tier used for access decisions.
	Role Role

	// Expiry is when the session token expires. Zero means unknown.
	Expiry time.Time
}

// Expired reports whether the session's token is past its expiry.
func (s *Session) Expired() bool {
	return !s.Expiry.IsZero() && time.Now().After(s.Expiry)
}
