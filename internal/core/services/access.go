package services

import (
	"context"
	"fmt"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
)

// Ensure AccessService implements the interface.
var _ driving.AccessService = (*AccessService)(nil)

// AccessService gates the wizard behind an authenticated session with a
// modifying role. Role rights come from the pure lookup tables on
// domain.Role; this service only sequences the checks.
type AccessService struct {
	sessions driven.SessionProvider
}

// NewAccessService creates the access gate over a session provider.
func NewAccessService(sessions driven.SessionProvider) *AccessService {
	return &AccessService{sessions: sessions}
}

// Current returns the session without any role check.
func (a *AccessService) Current(ctx context.Context) (*domain.Session, error) {
	session, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrAuthRequired
	}
	return session, nil
}

// Authorize returns the session when it exists, is unexpired and its
// role carries the modify actions.
func (a *AccessService) Authorize(ctx context.Context) (*domain.Session, error) {
	session, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session.Expired() {
		return nil, domain.ErrAuthExpired
	}
	if !session.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrPermissionDenied, session.Role)
	}
	if !session.Role.CanModify() {
		return nil, fmt.Errorf("%w: role %s cannot modify company records", domain.ErrPermissionDenied, session.Role)
	}
	return session, nil
}
