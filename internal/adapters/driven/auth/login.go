package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// LoginClient exchanges account credentials for a session at the
// identity service and persists the result for later runs.
type LoginClient struct {
	config driven.ConfigStore
	oauth  *oauth2.Config
}

// NewLoginClient creates a login client against the identity token
// endpoint.
func NewLoginClient(config driven.ConfigStore, clientID, tokenURL string) *LoginClient {
	return &LoginClient{
		config: config,
		oauth: &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{TokenURL: tokenURL},
		},
	}
}

// Login performs the password grant and persists the session. The
// identity service returns the user identifier and subscription role as
// extra token fields.
func (c *LoginClient) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	token, err := c.oauth.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	session := &domain.Session{
		UserID: extraString(token, "user_id"),
		Email:  email,
		Role:   domain.Role(extraString(token, "role")),
		Expiry: token.Expiry,
	}
	if !session.Role.Valid() {
		return nil, fmt.Errorf("%w: account has no recognized subscription role", domain.ErrPermissionDenied)
	}

	if err := SaveSession(c.config, session, token.AccessToken, token.RefreshToken); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	logger.Info("signed in as %s (%s)", session.Email, session.Role)
	return session, nil
}

// Logout clears the persisted session.
func (c *LoginClient) Logout() error {
	return ClearSession(c.config)
}

func extraString(token *oauth2.Token, key string) string {
	if v, ok := token.Extra(key).(string); ok {
		return v
	}
	return ""
}
