package driving

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// ProfileService reads and removes stored company profiles. Load is the
// inverse of the submission translator: it hydrates a full form state
// from the company row and its child tables for edit sessions.
type ProfileService interface {
	// List returns summaries of all stored companies.
	List(ctx context.Context) ([]domain.CompanySummary, error)

	// Load hydrates the full profile for a company.
	Load(ctx context.Context, companyID string) (*domain.CompanyProfile, error)

	// Delete removes a company and all its child rows. Relationship rows
	// are removed wherever the company appears as either endpoint.
	Delete(ctx context.Context, companyID string) error
}
