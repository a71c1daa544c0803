package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/metrics"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// Ensure WizardService implements the interface.
var _ driving.WizardService = (*WizardService)(nil)

// WizardService is the seven-step profile editing session. It owns the
// aggregate form state and the step pointer, snapshots both to the
// draft store after every mutation, and drives the submission lifecycle
// from the final step.
//
// Draft persistence differs by mode: create sessions persist the full
// serialized form state so an interrupted entry survives a restart;
// edit sessions persist only the step pointer, since the form state is
// reloaded from the datastore on resume.
type WizardService struct {
	mode    domain.WizardMode
	profile *domain.CompanyProfile
	step    domain.WizardStep

	fieldErrors map[string]string
	phase       domain.SubmissionPhase
	submitErr   string

	drafts    driven.DraftStore
	submitter driving.SubmissionService
}

// NewCreateWizard starts a new-company session with a freshly seeded
// profile.
func NewCreateWizard(drafts driven.DraftStore, submitter driving.SubmissionService) *WizardService {
	return &WizardService{
		mode:        domain.ModeCreate,
		profile:     domain.NewCompanyProfile(),
		step:        domain.StepFirst,
		fieldErrors: make(map[string]string),
		drafts:      drafts,
		submitter:   submitter,
	}
}

// NewEditWizard starts an edit session over an already loaded profile.
// The profile must carry the company identifier.
func NewEditWizard(drafts driven.DraftStore, submitter driving.SubmissionService, profile *domain.CompanyProfile) (*WizardService, error) {
	if profile == nil || profile.ID == "" {
		return nil, domain.ErrMissingCompanyID
	}
	profile.EnsureLists()
	return &WizardService{
		mode:        domain.ModeEdit,
		profile:     profile,
		step:        domain.StepFirst,
		fieldErrors: make(map[string]string),
		drafts:      drafts,
		submitter:   submitter,
	}, nil
}

func (w *WizardService) Mode() domain.WizardMode         { return w.mode }
func (w *WizardService) Step() domain.WizardStep         { return w.step }
func (w *WizardService) Profile() *domain.CompanyProfile { return w.profile }
func (w *WizardService) FieldErrors() map[string]string  { return w.fieldErrors }
func (w *WizardService) Phase() domain.SubmissionPhase   { return w.phase }
func (w *WizardService) SubmitError() string             { return w.submitErr }

// scope returns this session's draft scope.
func (w *WizardService) scope() domain.DraftScope {
	if w.mode == domain.ModeEdit {
		return domain.EditDraftScope(w.profile.ID)
	}
	return domain.CreateDraftScope
}

// persist snapshots the session to the draft store. Edit sessions store
// the step pointer only.
func (w *WizardService) persist(ctx context.Context) error {
	state := w.profile
	if w.mode == domain.ModeEdit {
		state = nil
	}
	if err := w.drafts.Save(ctx, w.scope(), w.step, state); err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// validateStep records field errors for the given step. Only the
// identity step carries required fields.
func (w *WizardService) validateStep(step domain.WizardStep) bool {
	if step != domain.StepIdentity {
		return true
	}
	ok := true
	if isBlank(w.profile.Name) {
		w.fieldErrors["name"] = "Company name is required"
		ok = false
	}
	if isBlank(w.profile.Sector) {
		w.fieldErrors["sector"] = "Sector is required"
		ok = false
	}
	return ok
}

// Next validates the current step and advances. Validation failure
// records field errors and keeps the step; it is not an error.
func (w *WizardService) Next(ctx context.Context) error {
	if !w.validateStep(w.step) {
		return nil
	}
	if w.step < domain.StepLast {
		w.step++
	}
	return w.persist(ctx)
}

// Previous moves back one step without validation.
func (w *WizardService) Previous(ctx context.Context) error {
	if w.step > domain.StepFirst {
		w.step--
	}
	return w.persist(ctx)
}

// UpdateField sets a scalar field by name and clears its recorded
// validation error. The seven flat financial field names patch the
// first financial entry and recompute its derived ratios.
func (w *WizardService) UpdateField(ctx context.Context, name string, value any) error {
	delete(w.fieldErrors, name)

	if domain.IsCoreFinancialField(name) {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: field %s expects text", domain.ErrInvalidInput, name)
		}
		// RemoveEntry can empty the list; reseed before patching.
		if len(w.profile.Financials) == 0 {
			w.profile.Financials = []domain.FinancialEntry{domain.NewFinancialEntry()}
		}
		entry := &w.profile.Financials[0]
		if err := setFinancialField(entry, name, s); err != nil {
			return err
		}
		entry.Ratios = metrics.Compute(*entry)
		return w.persist(ctx)
	}

	if err := w.setScalar(name, value); err != nil {
		return err
	}
	return w.persist(ctx)
}

func (w *WizardService) setScalar(name string, value any) error {
	if name == "logo" {
		file, ok := value.(*domain.AssetFile)
		if !ok && value != nil {
			return fmt.Errorf("%w: field logo expects a file", domain.ErrInvalidInput)
		}
		w.profile.Logo = file
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: field %s expects text", domain.ErrInvalidInput, name)
	}

	p := w.profile
	switch name {
	case "name":
		p.Name = s
	case "sector":
		p.Sector = s
	case "registration_number":
		p.RegistrationNumber = s
	case "tax_id":
		p.TaxID = s
	case "industry":
		p.Industry = s
	case "status":
		p.Status = s
	case "founded_date":
		p.FoundedDate = s
	case "website":
		p.Website = s
	case "email":
		p.Email = s
	case "phone":
		p.Phone = s
	case "description":
		p.Description = s
	case "listing_status":
		p.ListingStatus = s
	case "stock_exchange":
		p.StockExchange = s
	case "ticker_symbol":
		p.TickerSymbol = s
	case "employee_count":
		p.EmployeeCount = s
	case "logo_url":
		p.LogoURL = s
	default:
		return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, name)
	}
	return nil
}

// AppendEntry appends a seeded default record to the section's list.
func (w *WizardService) AppendEntry(ctx context.Context, section domain.Section) error {
	p := w.profile
	switch section {
	case domain.SectionAddresses:
		p.Addresses = append(p.Addresses, domain.NewAddress())
	case domain.SectionContacts:
		p.Contacts = append(p.Contacts, domain.NewContact())
	case domain.SectionOfficials:
		p.Officials = append(p.Officials, domain.NewKeyOfficial())
	case domain.SectionFinancials:
		p.Financials = append(p.Financials, domain.NewFinancialEntry())
	case domain.SectionFunding:
		p.FundingRounds = append(p.FundingRounds, domain.NewFundingRound())
	case domain.SectionInvestments:
		p.Investments = append(p.Investments, domain.NewCompanyInvestment())
	case domain.SectionFilings:
		p.Filings = append(p.Filings, domain.NewRegulatoryFiling())
	case domain.SectionLegal:
		p.LegalCases = append(p.LegalCases, domain.NewLegalCase())
	case domain.SectionNews:
		p.News = append(p.News, domain.NewNewsItem())
	case domain.SectionRelationships:
		p.Relationships = append(p.Relationships, domain.NewCompanyRelationship())
	default:
		return fmt.Errorf("%w: unknown section %q", domain.ErrInvalidInput, section)
	}
	return w.persist(ctx)
}

// RemoveEntry removes the record at index from the section's list.
func (w *WizardService) RemoveEntry(ctx context.Context, section domain.Section, index int) error {
	p := w.profile
	switch section {
	case domain.SectionAddresses:
		if index < 0 || index >= len(p.Addresses) {
			return indexError(section, index)
		}
		p.Addresses = removeAt(p.Addresses, index)
	case domain.SectionContacts:
		if index < 0 || index >= len(p.Contacts) {
			return indexError(section, index)
		}
		p.Contacts = removeAt(p.Contacts, index)
	case domain.SectionOfficials:
		if index < 0 || index >= len(p.Officials) {
			return indexError(section, index)
		}
		p.Officials = removeAt(p.Officials, index)
	case domain.SectionFinancials:
		if index < 0 || index >= len(p.Financials) {
			return indexError(section, index)
		}
		p.Financials = removeAt(p.Financials, index)
	case domain.SectionFunding:
		if index < 0 || index >= len(p.FundingRounds) {
			return indexError(section, index)
		}
		p.FundingRounds = removeAt(p.FundingRounds, index)
	case domain.SectionInvestments:
		if index < 0 || index >= len(p.Investments) {
			return indexError(section, index)
		}
		p.Investments = removeAt(p.Investments, index)
	case domain.SectionFilings:
		if index < 0 || index >= len(p.Filings) {
			return indexError(section, index)
		}
		p.Filings = removeAt(p.Filings, index)
	case domain.SectionLegal:
		if index < 0 || index >= len(p.LegalCases) {
			return indexError(section, index)
		}
		p.LegalCases = removeAt(p.LegalCases, index)
	case domain.SectionNews:
		if index < 0 || index >= len(p.News) {
			return indexError(section, index)
		}
		p.News = removeAt(p.News, index)
	case domain.SectionRelationships:
		if index < 0 || index >= len(p.Relationships) {
			return indexError(section, index)
		}
		p.Relationships = removeAt(p.Relationships, index)
	default:
		return fmt.Errorf("%w: unknown section %q", domain.ErrInvalidInput, section)
	}
	return w.persist(ctx)
}

// UpdateEntryField patches one field of the record at index. Changing
// any field of a financial entry recomputes its derived ratios.
func (w *WizardService) UpdateEntryField(ctx context.Context, section domain.Section, index int, field string, value any) error {
	p := w.profile
	var err error
	switch section {
	case domain.SectionAddresses:
		if index < 0 || index >= len(p.Addresses) {
			return indexError(section, index)
		}
		err = setAddressField(&p.Addresses[index], field, value)
	case domain.SectionContacts:
		if index < 0 || index >= len(p.Contacts) {
			return indexError(section, index)
		}
		err = setContactField(&p.Contacts[index], field, value)
	case domain.SectionOfficials:
		if index < 0 || index >= len(p.Officials) {
			return indexError(section, index)
		}
		err = setOfficialField(&p.Officials[index], field, value)
	case domain.SectionFinancials:
		if index < 0 || index >= len(p.Financials) {
			return indexError(section, index)
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: field %s expects text", domain.ErrInvalidInput, field)
		}
		entry := &p.Financials[index]
		if err = setFinancialField(entry, field, s); err == nil {
			entry.Ratios = metrics.Compute(*entry)
		}
	case domain.SectionFunding:
		if index < 0 || index >= len(p.FundingRounds) {
			return indexError(section, index)
		}
		err = setRoundField(&p.FundingRounds[index], field, value)
	case domain.SectionInvestments:
		if index < 0 || index >= len(p.Investments) {
			return indexError(section, index)
		}
		err = setInvestmentField(&p.Investments[index], field, value)
	case domain.SectionFilings:
		if index < 0 || index >= len(p.Filings) {
			return indexError(section, index)
		}
		err = setFilingField(&p.Filings[index], field, value)
	case domain.SectionLegal:
		if index < 0 || index >= len(p.LegalCases) {
			return indexError(section, index)
		}
		err = setLegalCaseField(&p.LegalCases[index], field, value)
	case domain.SectionNews:
		if index < 0 || index >= len(p.News) {
			return indexError(section, index)
		}
		err = setNewsField(&p.News[index], field, value)
	case domain.SectionRelationships:
		if index < 0 || index >= len(p.Relationships) {
			return indexError(section, index)
		}
		err = setRelationshipField(&p.Relationships[index], field, value)
	default:
		return fmt.Errorf("%w: unknown section %q", domain.ErrInvalidInput, section)
	}
	if err != nil {
		return err
	}
	return w.persist(ctx)
}

// AppendInvestor appends a default investor to the given funding round.
func (w *WizardService) AppendInvestor(ctx context.Context, round int) error {
	if round < 0 || round >= len(w.profile.FundingRounds) {
		return indexError(domain.SectionFunding, round)
	}
	r := &w.profile.FundingRounds[round]
	r.Investors = append(r.Investors, domain.NewInvestor())
	return w.persist(ctx)
}

// RemoveInvestor removes an investor from the given funding round.
func (w *WizardService) RemoveInvestor(ctx context.Context, round, index int) error {
	if round < 0 || round >= len(w.profile.FundingRounds) {
		return indexError(domain.SectionFunding, round)
	}
	r := &w.profile.FundingRounds[round]
	if index < 0 || index >= len(r.Investors) {
		return indexError(domain.SectionFunding, index)
	}
	r.Investors = removeAt(r.Investors, index)
	return w.persist(ctx)
}

// UpdateInvestorField patches one field of a round's investor.
func (w *WizardService) UpdateInvestorField(ctx context.Context, round, index int, field string, value any) error {
	if round < 0 || round >= len(w.profile.FundingRounds) {
		return indexError(domain.SectionFunding, round)
	}
	r := &w.profile.FundingRounds[round]
	if index < 0 || index >= len(r.Investors) {
		return indexError(domain.SectionFunding, index)
	}
	if err := setInvestorField(&r.Investors[index], field, value); err != nil {
		return err
	}
	return w.persist(ctx)
}

// Submit validates the identity fields and runs the write sequence.
// It is only available from the final step; invoked earlier it returns
// ErrSubmitUnavailable and leaves the session untouched. Validation
// failure records field errors and fails the phase without returning an
// error; a fatal write error is recorded the same way. Success stores
// the company identifier and clears this session's draft.
func (w *WizardService) Submit(ctx context.Context) error {
	if w.step != domain.StepLast {
		return domain.ErrSubmitUnavailable
	}
	w.phase = domain.PhaseValidating
	w.submitErr = ""
	if !w.validateStep(domain.StepIdentity) {
		w.phase = domain.PhaseFailed
		w.submitErr = "Company name and sector are required"
		return nil
	}

	w.phase = domain.PhaseSubmitting
	id, err := w.submitter.Submit(ctx, w.profile, w.mode)
	if err != nil {
		w.phase = domain.PhaseFailed
		w.submitErr = err.Error()
		logger.Warn("submission failed: %v", err)
		return nil
	}

	w.profile.ID = id
	w.phase = domain.PhaseSucceeded
	if err := w.drafts.Clear(ctx, w.scope()); err != nil {
		logger.Warn("could not clear draft after submission: %v", err)
	}
	return nil
}

// Restore loads this session's draft. A missing draft is not an error;
// the session simply starts fresh.
func (w *WizardService) Restore(ctx context.Context) error {
	draft, err := w.drafts.Load(ctx, w.scope())
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading draft: %w", err)
	}

	if draft.Step >= domain.StepFirst && draft.Step <= domain.StepLast {
		w.step = draft.Step
	}
	if w.mode == domain.ModeCreate && draft.State != nil {
		draft.State.EnsureLists()
		w.profile = draft.State
	}
	logger.Debug("restored %s draft at step %d", w.mode, w.step)
	return nil
}

// Abandon discards this session's draft without submitting.
func (w *WizardService) Abandon(ctx context.Context) error {
	if err := w.drafts.Clear(ctx, w.scope()); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// ==================== Field setters ====================

func indexError(section domain.Section, index int) error {
	return fmt.Errorf("%w: no record %d in section %s", domain.ErrInvalidInput, index, section)
}

// removeAt returns s without the element at i. The result never shares
// a backing array with s, so earlier snapshots of the list stay intact.
func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func fieldText(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %s expects text", domain.ErrInvalidInput, field)
	}
	return s, nil
}

func fieldBool(field string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %s expects a boolean", domain.ErrInvalidInput, field)
	}
	return b, nil
}

func setFinancialField(f *domain.FinancialEntry, field, value string) error {
	switch field {
	case "fiscal_year":
		f.FiscalYear = value
	case "period_type":
		f.PeriodType = value
	case domain.FieldTotalRevenue:
		f.TotalRevenue = value
	case "gross_profit":
		f.GrossProfit = value
	case "operating_profit":
		f.OperatingProfit = value
	case domain.FieldNetProfit:
		f.NetProfit = value
	case "ebitda":
		f.EBITDA = value
	case domain.FieldTotalAssets:
		f.TotalAssets = value
	case domain.FieldCurrentAssets:
		f.CurrentAssets = value
	case domain.FieldTotalLiabilities:
		f.TotalLiabilities = value
	case domain.FieldCurrentLiabilities:
		f.CurrentLiabilities = value
	case domain.FieldShareholdersEquity:
		f.ShareholdersEquity = value
	case "operating_cash_flow":
		f.OperatingCashFlow = value
	case "investing_cash_flow":
		f.InvestingCashFlow = value
	case "financing_cash_flow":
		f.FinancingCashFlow = value
	default:
		return fmt.Errorf("%w: unknown financial field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setAddressField(a *domain.Address, field string, value any) error {
	if field == "is_primary" {
		b, err := fieldBool(field, value)
		if err != nil {
			return err
		}
		a.IsPrimary = b
		return nil
	}
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "address_type":
		a.Type = s
	case "address_line1":
		a.Line1 = s
	case "address_line2":
		a.Line2 = s
	case "city":
		a.City = s
	case "state":
		a.State = s
	case "postal_code":
		a.PostalCode = s
	case "country":
		a.Country = s
	default:
		return fmt.Errorf("%w: unknown address field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setContactField(c *domain.Contact, field string, value any) error {
	if field == "is_primary" {
		b, err := fieldBool(field, value)
		if err != nil {
			return err
		}
		c.IsPrimary = b
		return nil
	}
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "contact_type":
		c.Type = s
	case "contact_value":
		c.Value = s
	case "label":
		c.Label = s
	default:
		return fmt.Errorf("%w: unknown contact field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setOfficialField(o *domain.KeyOfficial, field string, value any) error {
	if field == "is_current" {
		b, err := fieldBool(field, value)
		if err != nil {
			return err
		}
		o.IsCurrent = b
		return nil
	}
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		o.Name = s
	case "designation":
		o.Designation = s
	case "email":
		o.Email = s
	case "phone":
		o.Phone = s
	case "appointed_date":
		o.AppointedDate = s
	case "education":
		o.Education = s
	case "experience":
		o.Experience = s
	default:
		return fmt.Errorf("%w: unknown official field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setRoundField(r *domain.FundingRound, field string, value any) error {
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "round_type":
		r.RoundType = s
	case "round_name":
		r.RoundName = s
	case "funding_date":
		r.FundingDate = s
	case "amount_raised":
		r.AmountRaised = s
	case "pre_money_valuation":
		r.PreValuation = s
	case "post_money_valuation":
		r.PostValuation = s
	case "status":
		r.Status = s
	default:
		return fmt.Errorf("%w: unknown funding round field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setInvestorField(i *domain.Investor, field string, value any) error {
	switch field {
	case "is_lead_investor":
		b, err := fieldBool(field, value)
		if err != nil {
			return err
		}
		i.IsLead = b
		return nil
	case "has_board_seat":
		b, err := fieldBool(field, value)
		if err != nil {
			return err
		}
		i.HasBoardSeat = b
		return nil
	}
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "investor_name":
		i.Name = s
	case "investor_type":
		i.Type = s
	case "investment_amount":
		i.Amount = s
	default:
		return fmt.Errorf("%w: unknown investor field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setInvestmentField(i *domain.CompanyInvestment, field string, value any) error {
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "invested_company_name":
		i.TargetName = s
	case "investment_date":
		i.InvestmentDate = s
	case "investment_amount":
		i.Amount = s
	case "stake_percentage":
		i.StakePercent = s
	case "investment_type":
		i.InvestmentType = s
	case "status":
		i.Status = s
	default:
		return fmt.Errorf("%w: unknown investment field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setFilingField(f *domain.RegulatoryFiling, field string, value any) error {
	if field == "document" {
		file, ok := value.(*domain.AssetFile)
		if !ok && value != nil {
			return fmt.Errorf("%w: field document expects a file", domain.ErrInvalidInput)
		}
		f.Document = file
		return nil
	}
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "filing_type":
		f.FilingType = s
	case "filing_date":
		f.FilingDate = s
	case "filing_number":
		f.FilingNumber = s
	case "authority":
		f.Authority = s
	case "status":
		f.Status = s
	case "description":
		f.Description = s
	case "document_url":
		f.DocumentURL = s
	default:
		return fmt.Errorf("%w: unknown filing field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setLegalCaseField(l *domain.LegalCase, field string, value any) error {
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "case_number":
		l.CaseNumber = s
	case "case_title":
		l.CaseTitle = s
	case "court_name":
		l.CourtName = s
	case "case_type":
		l.CaseType = s
	case "filed_date":
		l.FiledDate = s
	case "status":
		l.Status = s
	case "description":
		l.Description = s
	default:
		return fmt.Errorf("%w: unknown legal case field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setNewsField(n *domain.NewsItem, field string, value any) error {
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		n.Title = s
	case "source":
		n.Source = s
	case "url":
		n.URL = s
	case "published_date":
		n.PublishedDate = s
	case "category":
		n.Category = s
	case "summary":
		n.Summary = s
	default:
		return fmt.Errorf("%w: unknown news field %q", domain.ErrInvalidInput, field)
	}
	return nil
}

func setRelationshipField(r *domain.CompanyRelationship, field string, value any) error {
	s, err := fieldText(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "related_company_name":
		r.RelatedName = s
	case "relationship_type":
		r.RelationshipType = s
	case "ownership_percentage":
		r.OwnershipPercent = s
	case "effective_date":
		r.EffectiveDate = s
	case "status":
		r.Status = s
	case "notes":
		r.Notes = s
	default:
		return fmt.Errorf("%w: unknown relationship field %q", domain.ErrInvalidInput, field)
	}
	return nil
}
