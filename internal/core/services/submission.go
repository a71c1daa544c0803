package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/metrics"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService flattens a finalized profile into the ordered write
// sequence against the remote datastore: the company row first, then one
// replace-all-children pass per child entity type. Completed writes are
// never rolled back; the first fatal error aborts the remainder and is
// surfaced as the submission's single error message.
type SubmissionService struct {
	db     driven.Datastore
	assets driven.AssetStore

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewSubmissionService creates a submission service. Identifiers are
// generated client-side (UUID v4) before each write so that dependent
// rows can reference them.
func NewSubmissionService(db driven.Datastore, assets driven.AssetStore) *SubmissionService {
	return &SubmissionService{
		db:     db,
		assets: assets,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// Submit writes the profile and returns the company identifier.
func (s *SubmissionService) Submit(ctx context.Context, profile *domain.CompanyProfile, mode domain.WizardMode) (string, error) {
	if profile == nil || isBlank(profile.Name) || isBlank(profile.Sector) {
		return "", fmt.Errorf("%w: company name and sector are required", domain.ErrInvalidInput)
	}

	companyID := profile.ID
	if mode == domain.ModeEdit {
		if companyID == "" {
			return "", domain.ErrMissingCompanyID
		}
	} else if companyID == "" {
		companyID = s.newID()
	}

	preds := predicatesFor(mode)
	logger.Section("Submission")
	logger.Debug("submitting company %s (%s mode)", companyID, mode)

	// Filing documents stored previously must be captured before the
	// replace pass deletes their rows.
	priorDocs, err := s.priorFilingDocuments(ctx, companyID, mode)
	if err != nil {
		return "", err
	}

	// The company row must exist before any child write references it.
	if err := s.writeCompany(ctx, profile, companyID, mode); err != nil {
		return "", err
	}

	if err := s.writeAddresses(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeContacts(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeOfficials(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeFinancials(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeFundingRounds(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeInvestments(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeFilings(ctx, profile, companyID, mode, preds, priorDocs); err != nil {
		return "", err
	}
	if err := s.writeLegalCases(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeNews(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}
	if err := s.writeRelationships(ctx, profile, companyID, mode, preds); err != nil {
		return "", err
	}

	logger.Info("submission complete for company %s", companyID)
	return companyID, nil
}

// ==================== Company row ====================

func (s *SubmissionService) writeCompany(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode) error {
	logoURL := s.uploadLogo(ctx, profile, companyID)

	now := s.now()
	row := driven.Row{
		"name":                profile.Name,
		"name_lower":          strings.ToLower(profile.Name),
		"registration_number": textOrNil(profile.RegistrationNumber),
		"tax_id":              textOrNil(profile.TaxID),
		"sector":              profile.Sector,
		"industry":            textOrNil(profile.Industry),
		"status":              textOrNil(profile.Status),
		"founded_date":        dateOrNil(profile.FoundedDate),
		"website":             textOrNil(profile.Website),
		"email":               textOrNil(profile.Email),
		"phone":               textOrNil(profile.Phone),
		"description":         textOrNil(profile.Description),
		"listing_status":      textOrNil(profile.ListingStatus),
		"stock_exchange":      textOrNil(profile.StockExchange),
		"ticker_symbol":       textOrNil(profile.TickerSymbol),
		"employee_count":      intOrNil(profile.EmployeeCount),
		"logo_url":            logoURL,
		"updated_at":          now,
	}

	if mode == domain.ModeEdit {
		err := s.db.Update(ctx, driven.TableCompanies, row, idFilter(companyID))
		if err != nil {
			return fmt.Errorf("updating company: %w", err)
		}
		return nil
	}

	row["id"] = companyID
	row["created_at"] = now
	if err := s.db.Insert(ctx, driven.TableCompanies, []driven.Row{row}); err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

// uploadLogo uploads the selected logo, if any. A failed upload is never
// fatal: the company row is written with a nil reference in create mode
// or the previously stored URL in edit mode, and the failure is logged.
func (s *SubmissionService) uploadLogo(ctx context.Context, profile *domain.CompanyProfile, companyID string) any {
	previous := textOrNil(profile.LogoURL)
	if profile.Logo == nil {
		return previous
	}

	url, err := s.uploadAsset(ctx, driven.BucketLogos, companyID, profile.Logo)
	if err != nil {
		logger.Warn("logo upload failed, continuing without logo: %v", err)
		return previous
	}
	return url
}

// uploadAsset reads a selected file and stores it under the company's
// prefix, returning the public URL.
func (s *SubmissionService) uploadAsset(ctx context.Context, bucket, companyID string, file *domain.AssetFile) (string, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	name := file.Name
	if name == "" {
		name = path.Base(file.Path)
	}
	storedPath := fmt.Sprintf("%s/%d_%s", companyID, s.now().UnixMilli(), name)

	stored, err := s.assets.Upload(ctx, bucket, storedPath, f, file.ContentType)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", name, err)
	}
	return s.assets.PublicURL(bucket, stored), nil
}

// ==================== Child entity passes ====================

// replaceChildren deletes a child table's existing rows in edit mode and
// inserts the new set. Create mode skips the delete: there is nothing to
// replace. Each entity type is replaced in full rather than diffed.
func (s *SubmissionService) replaceChildren(ctx context.Context, table string, deleteFilter driven.Filter, mode domain.WizardMode, rows []driven.Row) error {
	if mode == domain.ModeEdit {
		if err := s.db.Delete(ctx, table, deleteFilter); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Insert(ctx, table, rows); err != nil {
		return fmt.Errorf("saving %s: %w", table, err)
	}
	return nil
}

func (s *SubmissionService) writeAddresses(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, a := range profile.Addresses {
		if !preds.Address(a) {
			continue
		}
		rows = append(rows, driven.Row{
			"id":            s.newID(),
			"company_id":    companyID,
			"address_type":  textOrNil(a.Type),
			"address_line1": textOrNil(a.Line1),
			"address_line2": textOrNil(a.Line2),
			"city":          textOrNil(a.City),
			"state":         textOrNil(a.State),
			"postal_code":   textOrNil(a.PostalCode),
			"country":       textOrNil(a.Country),
			"is_primary":    a.IsPrimary,
			"created_at":    now,
			"updated_at":    now,
		})
	}
	return s.replaceChildren(ctx, driven.TableAddresses, companyFilter(companyID), mode, rows)
}

func (s *SubmissionService) writeContacts(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, c := range profile.Contacts {
		if !preds.Contact(c) {
			continue
		}
		rows = append(rows, driven.Row{
			"id":            s.newID(),
			"company_id":    companyID,
			"contact_type":  textOrNil(c.Type),
			"contact_value": textOrNil(c.Value),
			"label":         textOrNil(c.Label),
			"is_primary":    c.IsPrimary,
			"created_at":    now,
			"updated_at":    now,
		})
	}
	return s.replaceChildren(ctx, driven.TableContacts, companyFilter(companyID), mode, rows)
}

func (s *SubmissionService) writeOfficials(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, o := range profile.Officials {
		if !preds.Official(o) {
			continue
		}
		rows = append(rows, driven.Row{
			"id":             s.newID(),
			"company_id":     companyID,
			"name":           textOrNil(o.Name),
			"designation":    textOrNil(o.Designation),
			"email":          textOrNil(o.Email),
			"phone":          textOrNil(o.Phone),
			"appointed_date": dateOrNil(o.AppointedDate),
			"education":      textOrNil(o.Education),
			"experience":     textOrNil(o.Experience),
			"is_current":     o.IsCurrent,
			"created_at":     now,
			"updated_at":     now,
		})
	}
	return s.replaceChildren(ctx, driven.TableOfficials, companyFilter(companyID), mode, rows)
}

func (s *SubmissionService) writeFinancials(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, f := range profile.Financials {
		if !preds.Financial(f) {
			continue
		}
		// Ratios are recomputed at write time; the calculator is pure so
		// this matches whatever the wizard last derived.
		ratios := metrics.Compute(f)
		rows = append(rows, driven.Row{
			"id":                  s.newID(),
			"company_id":          companyID,
			"fiscal_year":         intOrNil(f.FiscalYear),
			"period_type":         textOrNil(f.PeriodType),
			"total_revenue":       numberOrNil(f.TotalRevenue),
			"gross_profit":        numberOrNil(f.GrossProfit),
			"operating_profit":    numberOrNil(f.OperatingProfit),
			"net_profit":          numberOrNil(f.NetProfit),
			"ebitda":              numberOrNil(f.EBITDA),
			"total_assets":        numberOrNil(f.TotalAssets),
			"current_assets":      numberOrNil(f.CurrentAssets),
			"total_liabilities":   numberOrNil(f.TotalLiabilities),
			"current_liabilities": numberOrNil(f.CurrentLiabilities),
			"shareholders_equity": numberOrNil(f.ShareholdersEquity),
			"operating_cash_flow": numberOrNil(f.OperatingCashFlow),
			"investing_cash_flow": numberOrNil(f.InvestingCashFlow),
			"financing_cash_flow": numberOrNil(f.FinancingCashFlow),
			"debt_to_equity":      ratioOrNil(ratios.DebtToEquity),
			"current_ratio":       ratioOrNil(ratios.CurrentRatio),
			"return_on_equity":    ratioOrNil(ratios.ReturnOnEquity),
			"return_on_assets":    ratioOrNil(ratios.ReturnOnAssets),
			"profit_margin":       ratioOrNil(ratios.ProfitMargin),
			"created_at":          now,
			"updated_at":          now,
		})
	}
	return s.replaceChildren(ctx, driven.TableFinancials, companyFilter(companyID), mode, rows)
}

// writeFundingRounds replaces the rounds and their investor associations.
// Round rows are written before association rows because associations
// reference round identifiers. Each distinct investor is resolved to a
// canonical investor entity (created if absent) before its association.
func (s *SubmissionService) writeFundingRounds(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()

	if mode == domain.ModeEdit {
		// Associations of the old rounds go first; they are keyed by
		// round identifier, so collect those before deleting the rounds.
		existing, err := s.db.Select(ctx, driven.TableFundingRounds, companyFilter(companyID))
		if err != nil {
			return fmt.Errorf("loading funding rounds: %w", err)
		}
		if len(existing) > 0 {
			var alts []map[string]any
			for _, row := range existing {
				alts = append(alts, map[string]any{"funding_round_id": row["id"]})
			}
			if err := s.db.Delete(ctx, driven.TableFundingInvest, driven.Filter{Or: alts}); err != nil {
				return fmt.Errorf("clearing funding investors: %w", err)
			}
		}
		if err := s.db.Delete(ctx, driven.TableFundingRounds, companyFilter(companyID)); err != nil {
			return fmt.Errorf("clearing funding rounds: %w", err)
		}
	}

	for _, round := range profile.FundingRounds {
		if !preds.FundingRound(round) {
			continue
		}

		roundID := s.newID()
		row := driven.Row{
			"id":                   roundID,
			"company_id":           companyID,
			"round_type":           textOrNil(round.RoundType),
			"round_name":           textOrNil(round.RoundName),
			"funding_date":         dateOrNil(round.FundingDate),
			"amount_raised":        numberOrNil(round.AmountRaised),
			"pre_money_valuation":  numberOrNil(round.PreValuation),
			"post_money_valuation": numberOrNil(round.PostValuation),
			"status":               textOrNil(round.Status),
			"created_at":           now,
			"updated_at":           now,
		}
		if err := s.db.Insert(ctx, driven.TableFundingRounds, []driven.Row{row}); err != nil {
			return fmt.Errorf("saving funding round: %w", err)
		}

		for _, inv := range round.Investors {
			if !preds.Investor(inv) {
				continue
			}
			investorID, err := s.resolveInvestor(ctx, inv)
			if err != nil {
				return fmt.Errorf("resolving investor %q: %w", inv.Name, err)
			}
			// The association table carries a creation timestamp only.
			assoc := driven.Row{
				"id":                s.newID(),
				"funding_round_id":  roundID,
				"investor_id":       investorID,
				"investment_amount": numberOrNil(inv.Amount),
				"is_lead_investor":  inv.IsLead,
				"has_board_seat":    inv.HasBoardSeat,
				"created_at":        now,
			}
			if err := s.db.Insert(ctx, driven.TableFundingInvest, []driven.Row{assoc}); err != nil {
				return fmt.Errorf("saving funding investor: %w", err)
			}
		}
	}
	return nil
}

// resolveInvestor finds the canonical investor entity for a (name, type)
// pair, creating it when absent. Creation failure is fatal for the
// submission.
func (s *SubmissionService) resolveInvestor(ctx context.Context, inv domain.Investor) (string, error) {
	existing, err := s.db.Select(ctx, driven.TableInvestors, driven.Filter{Eq: map[string]any{
		"name":          inv.Name,
		"investor_type": inv.Type,
	}})
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		if id, ok := existing[0]["id"].(string); ok {
			return id, nil
		}
	}

	id := s.newID()
	now := s.now()
	err = s.db.Insert(ctx, driven.TableInvestors, []driven.Row{{
		"id":            id,
		"name":          inv.Name,
		"investor_type": textOrNil(inv.Type),
		"created_at":    now,
		"updated_at":    now,
	}})
	if err != nil {
		return "", err
	}
	return id, nil
}

// writeInvestments replaces outbound investments. The named target is
// resolved to a company (a placeholder is created when absent); if the
// placeholder cannot be created the investment falls back to referencing
// the investing company itself rather than aborting the submission.
func (s *SubmissionService) writeInvestments(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()

	if mode == domain.ModeEdit {
		filter := driven.Filter{Eq: map[string]any{"investing_company_id": companyID}}
		if err := s.db.Delete(ctx, driven.TableInvestments, filter); err != nil {
			return fmt.Errorf("clearing investments: %w", err)
		}
	}

	var rows []driven.Row
	for _, inv := range profile.Investments {
		if !preds.Investment(inv) {
			continue
		}

		investeeID, err := s.resolveCompanyByName(ctx, inv.TargetName)
		if err != nil {
			logger.Warn("could not resolve investee %q, linking to self: %v", inv.TargetName, err)
			investeeID = companyID
		}

		rows = append(rows, driven.Row{
			"id":                   s.newID(),
			"investing_company_id": companyID,
			"invested_company_id":  investeeID,
			"investment_date":      dateOrNil(inv.InvestmentDate),
			"investment_amount":    numberOrNil(inv.Amount),
			"stake_percentage":     numberOrNil(inv.StakePercent),
			"investment_type":      textOrNil(inv.InvestmentType),
			"status":               textOrNil(inv.Status),
			"created_at":           now,
			"updated_at":           now,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Insert(ctx, driven.TableInvestments, rows); err != nil {
		return fmt.Errorf("saving investments: %w", err)
	}
	return nil
}

// resolveCompanyByName finds a company by case-insensitive name,
// creating a minimal placeholder row when absent.
func (s *SubmissionService) resolveCompanyByName(ctx context.Context, name string) (string, error) {
	existing, err := s.db.Select(ctx, driven.TableCompanies, driven.Filter{Eq: map[string]any{
		"name_lower": strings.ToLower(name),
	}})
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		if id, ok := existing[0]["id"].(string); ok {
			return id, nil
		}
	}

	id := s.newID()
	now := s.now()
	err = s.db.Insert(ctx, driven.TableCompanies, []driven.Row{{
		"id":         id,
		"name":       name,
		"name_lower": strings.ToLower(name),
		"status":     domain.CompanyStatusActive,
		"created_at": now,
		"updated_at": now,
	}})
	if err != nil {
		return "", err
	}
	logger.Debug("created placeholder company %q (%s)", name, id)
	return id, nil
}

func (s *SubmissionService) writeFilings(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates, priorDocs map[string]string) error {
	now := s.now()
	var rows []driven.Row
	for _, filing := range profile.Filings {
		if !preds.Filing(filing) {
			continue
		}

		docURL := any(nil)
		switch {
		case filing.Document != nil:
			url, err := s.uploadAsset(ctx, driven.BucketDocuments, companyID, filing.Document)
			if err != nil {
				logger.Warn("filing document upload failed, continuing without document: %v", err)
			} else {
				docURL = url
			}
		case filing.DocumentURL != "":
			docURL = filing.DocumentURL
		default:
			// No new file: carry forward the document stored for the
			// same (type, date, number) before this replace pass.
			if url, ok := priorDocs[filing.CarryForwardKey()]; ok {
				docURL = url
			}
		}

		rows = append(rows, driven.Row{
			"id":            s.newID(),
			"company_id":    companyID,
			"filing_type":   textOrNil(filing.FilingType),
			"filing_date":   dateOrNil(filing.FilingDate),
			"filing_number": textOrNil(filing.FilingNumber),
			"authority":     textOrNil(filing.Authority),
			"status":        textOrNil(filing.Status),
			"description":   textOrNil(filing.Description),
			"document_url":  docURL,
			"created_at":    now,
			"updated_at":    now,
		})
	}
	return s.replaceChildren(ctx, driven.TableFilings, companyFilter(companyID), mode, rows)
}

// priorFilingDocuments maps (type, date, number) keys to stored document
// URLs for the company's existing filings. Empty outside edit mode.
func (s *SubmissionService) priorFilingDocuments(ctx context.Context, companyID string, mode domain.WizardMode) (map[string]string, error) {
	docs := make(map[string]string)
	if mode != domain.ModeEdit {
		return docs, nil
	}

	existing, err := s.db.Select(ctx, driven.TableFilings, companyFilter(companyID))
	if err != nil {
		return nil, fmt.Errorf("loading filings: %w", err)
	}
	for _, row := range existing {
		url, ok := row["document_url"].(string)
		if !ok || url == "" {
			continue
		}
		filing := domain.RegulatoryFiling{
			FilingType:   stringValue(row["filing_type"]),
			FilingDate:   stringValue(row["filing_date"]),
			FilingNumber: stringValue(row["filing_number"]),
		}
		docs[filing.CarryForwardKey()] = url
	}
	return docs, nil
}

func (s *SubmissionService) writeLegalCases(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, l := range profile.LegalCases {
		if !preds.LegalCase(l) {
			continue
		}
		rows = append(rows, driven.Row{
			"id":          s.newID(),
			"company_id":  companyID,
			"case_number": textOrNil(l.CaseNumber),
			"case_title":  textOrNil(l.CaseTitle),
			"court_name":  textOrNil(l.CourtName),
			"case_type":   textOrNil(l.CaseType),
			"filed_date":  dateOrNil(l.FiledDate),
			"status":      textOrNil(l.Status),
			"description": textOrNil(l.Description),
			"created_at":  now,
			"updated_at":  now,
		})
	}
	return s.replaceChildren(ctx, driven.TableLegalCases, companyFilter(companyID), mode, rows)
}

func (s *SubmissionService) writeNews(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	now := s.now()
	var rows []driven.Row
	for _, n := range profile.News {
		if !preds.News(n) {
			continue
		}
		rows = append(rows, driven.Row{
			"id":             s.newID(),
			"company_id":     companyID,
			"title":          textOrNil(n.Title),
			"source":         textOrNil(n.Source),
			"url":            textOrNil(n.URL),
			"published_date": dateOrNil(n.PublishedDate),
			"category":       textOrNil(n.Category),
			"summary":        textOrNil(n.Summary),
			"created_at":     now,
			"updated_at":     now,
		})
	}
	return s.replaceChildren(ctx, driven.TableNews, companyFilter(companyID), mode, rows)
}

// writeRelationships replaces the company's relationship edges. Existing
// rows are removed wherever the company appears as either endpoint. The
// related company is resolved (or created as a placeholder) first; a
// failed resolution is fatal, as is an edge whose endpoints coincide.
func (s *SubmissionService) writeRelationships(ctx context.Context, profile *domain.CompanyProfile, companyID string, mode domain.WizardMode, preds rowPredicates) error {
	if companyID == "" {
		return domain.ErrMissingCompanyID
	}
	now := s.now()

	if mode == domain.ModeEdit {
		filter := driven.Filter{Or: []map[string]any{
			{"parent_company_id": companyID},
			{"subsidiary_company_id": companyID},
		}}
		if err := s.db.Delete(ctx, driven.TableRelationships, filter); err != nil {
			return fmt.Errorf("clearing relationships: %w", err)
		}
	}

	var rows []driven.Row
	for _, rel := range profile.Relationships {
		if !preds.Relationship(rel) {
			continue
		}

		relatedID, err := s.resolveCompanyByName(ctx, rel.RelatedName)
		if err != nil {
			return fmt.Errorf("resolving related company %q: %w", rel.RelatedName, err)
		}

		parentID, subsidiaryID := rel.Endpoints(companyID, relatedID)
		if parentID == subsidiaryID {
			return fmt.Errorf("%w: %q", domain.ErrSelfRelationship, rel.RelatedName)
		}

		rows = append(rows, driven.Row{
			"id":                    s.newID(),
			"parent_company_id":     parentID,
			"subsidiary_company_id": subsidiaryID,
			"relationship_type":     textOrNil(rel.RelationshipType),
			"ownership_percentage":  numberOrNil(rel.OwnershipPercent),
			"effective_date":        dateOrNil(rel.EffectiveDate),
			"status":                textOrNil(rel.Status),
			"notes":                 textOrNil(rel.Notes),
			"created_at":            now,
			"updated_at":            now,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Insert(ctx, driven.TableRelationships, rows); err != nil {
		return fmt.Errorf("saving relationships: %w", err)
	}
	return nil
}

// ==================== Helpers ====================

func idFilter(id string) driven.Filter {
	return driven.Filter{Eq: map[string]any{"id": id}}
}

func companyFilter(companyID string) driven.Filter {
	return driven.Filter{Eq: map[string]any{"company_id": companyID}}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
