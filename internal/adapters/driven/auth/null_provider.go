package auth

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Ensure StaticSessionProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*StaticSessionProvider)(nil)

// StaticSessionProvider serves a fixed session. Used for local
// development against an unauthenticated datastore.
type StaticSessionProvider struct {
	session *domain.Session
}

// NewStaticSessionProvider creates a provider returning the given
// session on every call.
func NewStaticSessionProvider(session *domain.Session) *StaticSessionProvider {
	return &StaticSessionProvider{session: session}
}

// Current returns the fixed session.
func (p *StaticSessionProvider) Current(_ context.Context) (*domain.Session, error) {
	if p.session == nil {
		return nil, domain.ErrAuthRequired
	}
	return p.session, nil
}
