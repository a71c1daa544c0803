package driven

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// SessionProvider exposes the current authenticated session.
// Implementations handle token storage and refresh; callers only see a
// session or an auth error.
type SessionProvider interface {
	// Current returns the active session, domain.ErrAuthRequired when no
	// user is signed in, or domain.ErrAuthExpired when refresh failed.
	Current(ctx context.Context) (*domain.Session, error)
}
