package driven

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// Draft is one persisted wizard snapshot.
type Draft struct {
	// Scope identifies the editing session the draft belongs to.
	Scope domain.DraftScope

	// Step is the persisted step pointer.
	Step domain.WizardStep

	// State is the serialized form state. Nil when the session's mode
	// persists only the step pointer.
	State *domain.CompanyProfile
}

// DraftStore snapshots and restores wizard sessions across restarts.
// It is injected into the wizard rather than accessed as ambient state;
// the wizard decides per mode whether to persist the step pointer, the
// full form state, or both.
type DraftStore interface {
	// Save stores or replaces the draft for the given scope.
	Save(ctx context.Context, scope domain.DraftScope, step domain.WizardStep, state *domain.CompanyProfile) error

	// Load returns the draft for the scope, or domain.ErrNotFound.
	Load(ctx context.Context, scope domain.DraftScope) (*Draft, error)

	// Clear removes the draft for the scope. Clearing a missing draft
	// is not an error.
	Clear(ctx context.Context, scope domain.DraftScope) error

	// List returns all stored drafts.
	List(ctx context.Context) ([]Draft, error)
}
