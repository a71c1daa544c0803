package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// refreshBuffer refreshes tokens slightly before they expire so an
// in-flight submission never races the expiry.
const refreshBuffer = 5 * time.Minute

// Ensure RefreshSessionProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*RefreshSessionProvider)(nil)

// RefreshSessionProvider wraps the config-backed session with automatic
// OAuth token refresh. When the stored access token is near expiry and a
// refresh token is available, it exchanges the refresh token at the
// identity endpoint and persists the rotated tokens.
type RefreshSessionProvider struct {
	config driven.ConfigStore
	oauth  *oauth2.Config

	mu sync.Mutex
}

// NewRefreshSessionProvider creates a refreshing session provider. The
// tokenURL is the identity service's token endpoint.
func NewRefreshSessionProvider(config driven.ConfigStore, clientID, tokenURL string) *RefreshSessionProvider {
	return &RefreshSessionProvider{
		config: config,
		oauth: &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{TokenURL: tokenURL},
		},
	}
}

// Current returns the stored session, refreshing its tokens first when
// they are near expiry.
func (p *RefreshSessionProvider) Current(ctx context.Context) (*domain.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	base := NewConfigSessionProvider(p.config)
	session, err := base.Current(ctx)
	if err != nil {
		return nil, err
	}

	if session.Expiry.IsZero() || time.Until(session.Expiry) > refreshBuffer {
		return session, nil
	}

	refreshToken := p.config.GetString(KeyRefreshToken)
	if refreshToken == "" {
		return session, nil
	}

	refreshed, err := p.oauth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       session.Expiry,
	}).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}

	session.Expiry = refreshed.Expiry
	rotated := refreshed.RefreshToken
	if rotated == "" {
		rotated = refreshToken
	}
	if err := SaveSession(p.config, session, refreshed.AccessToken, rotated); err != nil {
		return nil, fmt.Errorf("persisting refreshed session: %w", err)
	}

	logger.Debug("refreshed session token, new expiry %s", session.Expiry.Format(time.RFC3339))
	return session, nil
}
