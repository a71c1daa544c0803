package domain

import "fmt"

// WizardStep identifies one of the seven wizard steps.
type WizardStep int

// Wizard steps, one per domain section group.
const (
	StepIdentity WizardStep = iota + 1
	StepAddresses
	StepOfficials
	StepFinancials
	StepFunding
	StepFilings
	StepNews

	// StepFirst and StepLast bound forward/backward navigation.
	StepFirst = StepIdentity
	StepLast  = StepNews
)

// String returns the step's display title.
func (s WizardStep) String() string {
	switch s {
	case StepIdentity:
		return "Company Identity"
	case StepAddresses:
		return "Addresses & Contacts"
	case StepOfficials:
		return "Key Officials"
	case StepFinancials:
		return "Financials"
	case StepFunding:
		return "Funding & Investments"
	case StepFilings:
		return "Filings & Legal"
	case StepNews:
		return "News, Relationships & Review"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// WizardMode distinguishes create from edit sessions. Draft persistence
// is scoped separately per mode.
type WizardMode int

const (
	// ModeCreate is a new-company session.
	ModeCreate WizardMode = iota
	// ModeEdit is an existing-company session.
	ModeEdit
)

// String returns "create" or "edit".
func (m WizardMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// SubmissionPhase tracks the terminal submission lifecycle entered from
// the final step.
type SubmissionPhase int

const (
	// PhaseIdle means no submission has been attempted.
	PhaseIdle SubmissionPhase = iota
	// PhaseValidating means step validation is running before submit.
	PhaseValidating
	// PhaseSubmitting means the write sequence is in flight.
	PhaseSubmitting
	// PhaseSucceeded means every write completed.
	PhaseSucceeded
	// PhaseFailed means a fatal error aborted the submission.
	PhaseFailed
)

// String returns the phase name.
func (p SubmissionPhase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Section identifies one list-valued form section. Sections address
// uniform list operations (append / remove / patch) and appear in role
// permission tables.
type Section string

const (
	SectionIdentity      Section = "identity"
	SectionAddresses     Section = "addresses"
	SectionContacts      Section = "contacts"
	SectionOfficials     Section = "officials"
	SectionFinancials    Section = "financials"
	SectionFunding       Section = "funding_rounds"
	SectionInvestments   Section = "investments"
	SectionFilings       Section = "filings"
	SectionLegal         Section = "legal_cases"
	SectionNews          Section = "news"
	SectionRelationships Section = "relationships"
)

// ListSections enumerates every list-valued section in form order.
var ListSections = []Section{
	SectionAddresses,
	SectionContacts,
	SectionOfficials,
	SectionFinancials,
	SectionFunding,
	SectionInvestments,
	SectionFilings,
	SectionLegal,
	SectionNews,
	SectionRelationships,
}

// DraftScope scopes draft storage to one editing session. Create
// sessions share a single scope; edit sessions are scoped per company.
type DraftScope string

// CreateDraftScope is the scope for new-company sessions.
const CreateDraftScope DraftScope = "create"

// EditDraftScope returns the scope for editing the given company.
func EditDraftScope(companyID string) DraftScope {
	return DraftScope("edit:" + companyID)
}
