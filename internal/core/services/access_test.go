package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

type stubSessions struct {
	session *domain.Session
	err     error
}

func (s *stubSessions) Current(context.Context) (*domain.Session, error) {
	return s.session, s.err
}

func adminSession() *domain.Session {
	return &domain.Session{
		UserID: "u-1",
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
		Expiry: time.Now().Add(time.Hour),
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	svc := NewAccessService(&stubSessions{session: adminSession()})

	session, err := svc.Authorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestAuthorizeRequiresSession(t *testing.T) {
	svc := NewAccessService(&stubSessions{err: domain.ErrAuthRequired})
	_, err := svc.Authorize(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthRequired)

	svc = NewAccessService(&stubSessions{})
	_, err = svc.Authorize(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestAuthorizeRejectsExpiredSession(t *testing.T) {
	session := adminSession()
	session.Expiry = time.Now().Add(-time.Minute)
	svc := NewAccessService(&stubSessions{session: session})

	_, err := svc.Authorize(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthExpired)
}

func TestAuthorizeRejectsNonModifyingRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleFreemium, domain.RolePremium, domain.RoleEnterprise} {
		session := adminSession()
		session.Role = role
		svc := NewAccessService(&stubSessions{session: session})

		_, err := svc.Authorize(context.Background())
		require.ErrorIs(t, err, domain.ErrPermissionDenied, "role %s", role)
	}
}

func TestAuthorizeRejectsUnknownRole(t *testing.T) {
	session := adminSession()
	session.Role = domain.Role("SUPERUSER")
	svc := NewAccessService(&stubSessions{session: session})

	_, err := svc.Authorize(context.Background())
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCurrentSkipsRoleCheck(t *testing.T) {
	session := adminSession()
	session.Role = domain.RoleFreemium
	svc := NewAccessService(&stubSessions{session: session})

	got, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleFreemium, got.Role)
}
