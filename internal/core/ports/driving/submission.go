package driving

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// SubmissionService flattens a finalized form state into the ordered
// sequence of datastore writes: one company upsert followed by a
// replace-all-children pass per child entity type.
type SubmissionService interface {
	// Submit writes the profile and returns the company identifier.
	// In create mode the identifier is generated client-side; in edit
	// mode profile.ID must already be set. Completed writes are not
	// rolled back when a later write fails.
	Submit(ctx context.Context, profile *domain.CompanyProfile, mode domain.WizardMode) (string, error)
}
