package driving

import (
	"context"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// WizardService drives one company-profile editing session. It owns the
// aggregate form state, the step pointer, the validation-error map and
// the submission lifecycle; every mutation is snapshotted to the draft
// store before it returns.
type WizardService interface {
	// Mode returns whether this is a create or edit session.
	Mode() domain.WizardMode

	// Step returns the current wizard step.
	Step() domain.WizardStep

	// Profile returns the aggregate form state being edited.
	Profile() *domain.CompanyProfile

	// FieldErrors returns the current validation errors keyed by field name.
	FieldErrors() map[string]string

	// Phase returns the submission lifecycle phase.
	Phase() domain.SubmissionPhase

	// SubmitError returns the single user-visible message of the last
	// failed submission, or empty.
	SubmitError() string

	// Next validates the current step and advances on success. On
	// validation failure the step is unchanged and field errors are
	// recorded; no error is returned for plain validation failures.
	Next(ctx context.Context) error

	// Previous moves one step back without validation, clamped at the
	// first step.
	Previous(ctx context.Context) error

	// UpdateField sets a scalar field by name. Values are strings,
	// booleans for checkbox fields, or *domain.AssetFile for file
	// fields. Any recorded validation error for the field is cleared.
	UpdateField(ctx context.Context, name string, value any) error

	// AppendEntry appends a seeded default record to the section's list.
	AppendEntry(ctx context.Context, section domain.Section) error

	// RemoveEntry removes the record at index, re-indexing later siblings.
	RemoveEntry(ctx context.Context, section domain.Section, index int) error

	// UpdateEntryField patches one field of the record at index.
	UpdateEntryField(ctx context.Context, section domain.Section, index int, field string, value any) error

	// AppendInvestor appends a default investor to the given funding round.
	AppendInvestor(ctx context.Context, round int) error

	// RemoveInvestor removes an investor from the given funding round.
	RemoveInvestor(ctx context.Context, round, index int) error

	// UpdateInvestorField patches one field of a round's investor.
	UpdateInvestorField(ctx context.Context, round, index int, field string, value any) error

	// Submit runs the submission translator. Away from the final step it
	// returns ErrSubmitUnavailable. Success clears this session's drafts;
	// failure retains state and records a single submission error.
	Submit(ctx context.Context) error

	// Restore loads this session's draft: form state for create
	// sessions, the step pointer for edit sessions.
	Restore(ctx context.Context) error

	// Abandon discards this session's drafts without submitting.
	Abandon(ctx context.Context) error
}
