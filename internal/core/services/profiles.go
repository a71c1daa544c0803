package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driving"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService reads and removes stored company profiles. Load is the
// inverse of the submission translator: the company row and its child
// rows are hydrated back into the aggregate form state, with numeric
// columns rendered back to the text the form edits.
type ProfileService struct {
	db driven.Datastore
}

// NewProfileService creates a profile service over the datastore.
func NewProfileService(db driven.Datastore) *ProfileService {
	return &ProfileService{db: db}
}

// List returns summaries of all stored companies.
func (p *ProfileService) List(ctx context.Context) ([]domain.CompanySummary, error) {
	rows, err := p.db.Select(ctx, driven.TableCompanies, driven.Filter{})
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	summaries := make([]domain.CompanySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.CompanySummary{
			ID:        rowText(row["id"]),
			Name:      rowText(row["name"]),
			Sector:    rowText(row["sector"]),
			Status:    rowText(row["status"]),
			UpdatedAt: rowText(row["updated_at"]),
		})
	}
	return summaries, nil
}

// Load hydrates the full profile for a company.
func (p *ProfileService) Load(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	rows, err := p.db.Select(ctx, driven.TableCompanies, idFilter(companyID))
	if err != nil {
		return nil, fmt.Errorf("loading company: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: company %s", domain.ErrNotFound, companyID)
	}
	row := rows[0]

	profile := &domain.CompanyProfile{
		ID:                 companyID,
		Name:               rowText(row["name"]),
		Sector:             rowText(row["sector"]),
		RegistrationNumber: rowText(row["registration_number"]),
		TaxID:              rowText(row["tax_id"]),
		Industry:           rowText(row["industry"]),
		Status:             rowText(row["status"]),
		FoundedDate:        rowText(row["founded_date"]),
		Website:            rowText(row["website"]),
		Email:              rowText(row["email"]),
		Phone:              rowText(row["phone"]),
		Description:        rowText(row["description"]),
		ListingStatus:      rowText(row["listing_status"]),
		StockExchange:      rowText(row["stock_exchange"]),
		TickerSymbol:       rowText(row["ticker_symbol"]),
		EmployeeCount:      rowText(row["employee_count"]),
		LogoURL:            rowText(row["logo_url"]),
	}

	if err := p.loadChildren(ctx, profile, companyID); err != nil {
		return nil, err
	}

	profile.EnsureLists()
	logger.Debug("loaded profile for company %s", companyID)
	return profile, nil
}

func (p *ProfileService) loadChildren(ctx context.Context, profile *domain.CompanyProfile, companyID string) error {
	rows, err := p.db.Select(ctx, driven.TableAddresses, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading addresses: %w", err)
	}
	for _, row := range rows {
		profile.Addresses = append(profile.Addresses, domain.Address{
			Type:       rowText(row["address_type"]),
			Line1:      rowText(row["address_line1"]),
			Line2:      rowText(row["address_line2"]),
			City:       rowText(row["city"]),
			State:      rowText(row["state"]),
			PostalCode: rowText(row["postal_code"]),
			Country:    rowText(row["country"]),
			IsPrimary:  rowBool(row["is_primary"]),
		})
	}

	rows, err = p.db.Select(ctx, driven.TableContacts, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}
	for _, row := range rows {
		profile.Contacts = append(profile.Contacts, domain.Contact{
			Type:      rowText(row["contact_type"]),
			Value:     rowText(row["contact_value"]),
			Label:     rowText(row["label"]),
			IsPrimary: rowBool(row["is_primary"]),
		})
	}

	rows, err = p.db.Select(ctx, driven.TableOfficials, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading officials: %w", err)
	}
	for _, row := range rows {
		profile.Officials = append(profile.Officials, domain.KeyOfficial{
			Name:          rowText(row["name"]),
			Designation:   rowText(row["designation"]),
			Email:         rowText(row["email"]),
			Phone:         rowText(row["phone"]),
			AppointedDate: rowText(row["appointed_date"]),
			Education:     rowText(row["education"]),
			Experience:    rowText(row["experience"]),
			IsCurrent:     rowBool(row["is_current"]),
		})
	}

	rows, err = p.db.Select(ctx, driven.TableFinancials, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading financials: %w", err)
	}
	for _, row := range rows {
		profile.Financials = append(profile.Financials, domain.FinancialEntry{
			FiscalYear:         rowText(row["fiscal_year"]),
			PeriodType:         rowText(row["period_type"]),
			TotalRevenue:       rowText(row["total_revenue"]),
			GrossProfit:        rowText(row["gross_profit"]),
			OperatingProfit:    rowText(row["operating_profit"]),
			NetProfit:          rowText(row["net_profit"]),
			EBITDA:             rowText(row["ebitda"]),
			TotalAssets:        rowText(row["total_assets"]),
			CurrentAssets:      rowText(row["current_assets"]),
			TotalLiabilities:   rowText(row["total_liabilities"]),
			CurrentLiabilities: rowText(row["current_liabilities"]),
			ShareholdersEquity: rowText(row["shareholders_equity"]),
			OperatingCashFlow:  rowText(row["operating_cash_flow"]),
			InvestingCashFlow:  rowText(row["investing_cash_flow"]),
			FinancingCashFlow:  rowText(row["financing_cash_flow"]),
			Ratios: domain.FinancialRatios{
				DebtToEquity:   rowRatio(row["debt_to_equity"]),
				CurrentRatio:   rowRatio(row["current_ratio"]),
				ReturnOnEquity: rowRatio(row["return_on_equity"]),
				ReturnOnAssets: rowRatio(row["return_on_assets"]),
				ProfitMargin:   rowRatio(row["profit_margin"]),
			},
		})
	}

	if err := p.loadFundingRounds(ctx, profile, companyID); err != nil {
		return err
	}
	if err := p.loadInvestments(ctx, profile, companyID); err != nil {
		return err
	}

	rows, err = p.db.Select(ctx, driven.TableFilings, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading filings: %w", err)
	}
	for _, row := range rows {
		profile.Filings = append(profile.Filings, domain.RegulatoryFiling{
			FilingType:   rowText(row["filing_type"]),
			FilingDate:   rowText(row["filing_date"]),
			FilingNumber: rowText(row["filing_number"]),
			Authority:    rowText(row["authority"]),
			Status:       rowText(row["status"]),
			Description:  rowText(row["description"]),
			DocumentURL:  rowText(row["document_url"]),
		})
	}

	rows, err = p.db.Select(ctx, driven.TableLegalCases, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading legal proceedings: %w", err)
	}
	for _, row := range rows {
		profile.LegalCases = append(profile.LegalCases, domain.LegalCase{
			CaseNumber:  rowText(row["case_number"]),
			CaseTitle:   rowText(row["case_title"]),
			CourtName:   rowText(row["court_name"]),
			CaseType:    rowText(row["case_type"]),
			FiledDate:   rowText(row["filed_date"]),
			Status:      rowText(row["status"]),
			Description: rowText(row["description"]),
		})
	}

	rows, err = p.db.Select(ctx, driven.TableNews, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading news: %w", err)
	}
	for _, row := range rows {
		profile.News = append(profile.News, domain.NewsItem{
			Title:         rowText(row["title"]),
			Source:        rowText(row["source"]),
			URL:           rowText(row["url"]),
			PublishedDate: rowText(row["published_date"]),
			Category:      rowText(row["category"]),
			Summary:       rowText(row["summary"]),
		})
	}

	return p.loadRelationships(ctx, profile, companyID)
}

func (p *ProfileService) loadFundingRounds(ctx context.Context, profile *domain.CompanyProfile, companyID string) error {
	rounds, err := p.db.Select(ctx, driven.TableFundingRounds, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading funding rounds: %w", err)
	}
	for _, row := range rounds {
		round := domain.FundingRound{
			RoundType:     rowText(row["round_type"]),
			RoundName:     rowText(row["round_name"]),
			FundingDate:   rowText(row["funding_date"]),
			AmountRaised:  rowText(row["amount_raised"]),
			PreValuation:  rowText(row["pre_money_valuation"]),
			PostValuation: rowText(row["post_money_valuation"]),
			Status:        rowText(row["status"]),
			Investors:     []domain.Investor{},
		}

		assocs, err := p.db.Select(ctx, driven.TableFundingInvest, driven.Filter{
			Eq: map[string]any{"funding_round_id": row["id"]},
		})
		if err != nil {
			return fmt.Errorf("loading funding investors: %w", err)
		}
		for _, assoc := range assocs {
			inv := domain.Investor{
				Amount:       rowText(assoc["investment_amount"]),
				IsLead:       rowBool(assoc["is_lead_investor"]),
				HasBoardSeat: rowBool(assoc["has_board_seat"]),
			}
			entities, err := p.db.Select(ctx, driven.TableInvestors, driven.Filter{
				Eq: map[string]any{"id": assoc["investor_id"]},
			})
			if err != nil {
				return fmt.Errorf("loading investor: %w", err)
			}
			if len(entities) > 0 {
				inv.Name = rowText(entities[0]["name"])
				inv.Type = rowText(entities[0]["investor_type"])
			}
			round.Investors = append(round.Investors, inv)
		}
		profile.FundingRounds = append(profile.FundingRounds, round)
	}
	return nil
}

func (p *ProfileService) loadInvestments(ctx context.Context, profile *domain.CompanyProfile, companyID string) error {
	rows, err := p.db.Select(ctx, driven.TableInvestments, driven.Filter{
		Eq: map[string]any{"investing_company_id": companyID},
	})
	if err != nil {
		return fmt.Errorf("loading investments: %w", err)
	}
	for _, row := range rows {
		inv := domain.CompanyInvestment{
			InvestmentDate: rowText(row["investment_date"]),
			Amount:         rowText(row["investment_amount"]),
			StakePercent:   rowText(row["stake_percentage"]),
			InvestmentType: rowText(row["investment_type"]),
			Status:         rowText(row["status"]),
		}
		inv.TargetName, err = p.companyName(ctx, rowText(row["invested_company_id"]))
		if err != nil {
			return err
		}
		profile.Investments = append(profile.Investments, inv)
	}
	return nil
}

// loadRelationships hydrates every edge touching the company. The
// related name is the opposite endpoint's company name; the stored
// relationship type is kept as written.
func (p *ProfileService) loadRelationships(ctx context.Context, profile *domain.CompanyProfile, companyID string) error {
	rows, err := p.db.Select(ctx, driven.TableRelationships, driven.Filter{Or: []map[string]any{
		{"parent_company_id": companyID},
		{"subsidiary_company_id": companyID},
	}})
	if err != nil {
		return fmt.Errorf("loading relationships: %w", err)
	}
	for _, row := range rows {
		otherID := rowText(row["subsidiary_company_id"])
		if otherID == companyID {
			otherID = rowText(row["parent_company_id"])
		}
		name, err := p.companyName(ctx, otherID)
		if err != nil {
			return err
		}
		profile.Relationships = append(profile.Relationships, domain.CompanyRelationship{
			RelatedName:      name,
			RelationshipType: rowText(row["relationship_type"]),
			OwnershipPercent: rowText(row["ownership_percentage"]),
			EffectiveDate:    rowText(row["effective_date"]),
			Status:           rowText(row["status"]),
			Notes:            rowText(row["notes"]),
		})
	}
	return nil
}

func (p *ProfileService) companyName(ctx context.Context, companyID string) (string, error) {
	rows, err := p.db.Select(ctx, driven.TableCompanies, idFilter(companyID))
	if err != nil {
		return "", fmt.Errorf("resolving company name: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rowText(rows[0]["name"]), nil
}

// Delete removes a company and all its child rows, children first so a
// partial failure never leaves orphans pointing at a missing company.
func (p *ProfileService) Delete(ctx context.Context, companyID string) error {
	rows, err := p.db.Select(ctx, driven.TableCompanies, idFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading company: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: company %s", domain.ErrNotFound, companyID)
	}

	rounds, err := p.db.Select(ctx, driven.TableFundingRounds, companyFilter(companyID))
	if err != nil {
		return fmt.Errorf("loading funding rounds: %w", err)
	}
	if len(rounds) > 0 {
		var alts []map[string]any
		for _, row := range rounds {
			alts = append(alts, map[string]any{"funding_round_id": row["id"]})
		}
		if err := p.db.Delete(ctx, driven.TableFundingInvest, driven.Filter{Or: alts}); err != nil {
			return fmt.Errorf("deleting funding investors: %w", err)
		}
	}

	for _, table := range []string{
		driven.TableAddresses, driven.TableContacts, driven.TableOfficials,
		driven.TableFinancials, driven.TableFundingRounds, driven.TableFilings,
		driven.TableLegalCases, driven.TableNews,
	} {
		if err := p.db.Delete(ctx, table, companyFilter(companyID)); err != nil {
			return fmt.Errorf("deleting %s: %w", table, err)
		}
	}

	err = p.db.Delete(ctx, driven.TableInvestments, driven.Filter{Or: []map[string]any{
		{"investing_company_id": companyID},
		{"invested_company_id": companyID},
	}})
	if err != nil {
		return fmt.Errorf("deleting investments: %w", err)
	}

	err = p.db.Delete(ctx, driven.TableRelationships, driven.Filter{Or: []map[string]any{
		{"parent_company_id": companyID},
		{"subsidiary_company_id": companyID},
	}})
	if err != nil {
		return fmt.Errorf("deleting relationships: %w", err)
	}

	if err := p.db.Delete(ctx, driven.TableCompanies, idFilter(companyID)); err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}
	logger.Info("deleted company %s", companyID)
	return nil
}

// rowText renders a datastore value back to form text. NULL becomes the
// empty string; numbers render without a forced decimal tail.
func rowText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		// Pure dates re-render without a time tail so an edit session
		// resubmits them in the shape they were entered.
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", t)
	}
}

func rowBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func rowRatio(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case nil:
		return nil
	default:
		return nil
	}
}
