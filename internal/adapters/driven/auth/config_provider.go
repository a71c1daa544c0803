// Package auth provides session providers backing the access gate.
package auth

import (
	"context"
	"time"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Config keys under which the signed-in session is persisted.
const (
	KeyUserID       = "auth.user_id"
	KeyEmail        = "auth.email"
	KeyRole         = "auth.role"
	KeyExpiry       = "auth.expiry"
	KeyAccessToken  = "auth.access_token"
	KeyRefreshToken = "auth.refresh_token"
)

// Ensure ConfigSessionProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*ConfigSessionProvider)(nil)

// ConfigSessionProvider reads the signed-in session from the config
// store, where `atlas auth login` persisted it. It performs no token
// refresh; wrap it in a RefreshSessionProvider for that.
type ConfigSessionProvider struct {
	config driven.ConfigStore
}

// NewConfigSessionProvider creates a session provider over the config
// store.
func NewConfigSessionProvider(config driven.ConfigStore) *ConfigSessionProvider {
	return &ConfigSessionProvider{config: config}
}

// Current returns the stored session, or domain.ErrAuthRequired when no
// login has been persisted.
func (p *ConfigSessionProvider) Current(_ context.Context) (*domain.Session, error) {
	if p.config.GetString(KeyAccessToken) == "" {
		return nil, domain.ErrAuthRequired
	}

	session := &domain.Session{
		UserID: p.config.GetString(KeyUserID),
		Email:  p.config.GetString(KeyEmail),
		Role:   domain.Role(p.config.GetString(KeyRole)),
	}
	if raw := p.config.GetString(KeyExpiry); raw != "" {
		if expiry, err := time.Parse(time.RFC3339, raw); err == nil {
			session.Expiry = expiry
		}
	}
	return session, nil
}

// AccessToken returns the stored bearer token, for adapters that
// authenticate datastore and storage calls.
func (p *ConfigSessionProvider) AccessToken() string {
	return p.config.GetString(KeyAccessToken)
}

// SaveSession persists a session and its tokens to the config store.
func SaveSession(config driven.ConfigStore, session *domain.Session, accessToken, refreshToken string) error {
	if err := config.Set(KeyUserID, session.UserID); err != nil {
		return err
	}
	if err := config.Set(KeyEmail, session.Email); err != nil {
		return err
	}
	if err := config.Set(KeyRole, string(session.Role)); err != nil {
		return err
	}
	if err := config.Set(KeyExpiry, session.Expiry.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if err := config.Set(KeyAccessToken, accessToken); err != nil {
		return err
	}
	return config.Set(KeyRefreshToken, refreshToken)
}

// ClearSession removes the persisted session from the config store.
func ClearSession(config driven.ConfigStore) error {
	for _, key := range []string{KeyUserID, KeyEmail, KeyRole, KeyExpiry, KeyAccessToken, KeyRefreshToken} {
		if err := config.Set(key, ""); err != nil {
			return err
		}
	}
	return nil
}
