package driving

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// AccessService gates entry to the profile wizard.
type AccessService interface {
	// Authorize returns the current session when it exists and its role
	// carries the modify actions. Returns domain.ErrAuthRequired with no
	// session and domain.ErrPermissionDenied for non-modifying roles.
	Authorize(ctx context.Context) (*domain.Session, error)

	// Current returns the session without the role check, for display.
	Current(ctx context.Context) (*domain.Session, error)
}
