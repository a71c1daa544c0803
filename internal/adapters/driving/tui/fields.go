package tui

import (
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// fieldKind distinguishes how a field is edited and rendered.
type fieldKind int

const (
	kindText fieldKind = iota
	kindCheckbox
	kindFile
)

// fieldSpec describes one editable field of a form group. Getters take
// the funding-round index and the entry index; groups that need neither
// ignore them.
type fieldSpec struct {
	name        string
	label       string
	placeholder string
	kind        fieldKind
	get         func(p *domain.CompanyProfile, round, i int) string
	getBool     func(p *domain.CompanyProfile, round, i int) bool
}

// group is one titled block of fields within a step: either the
// company-level scalars or one list section.
type group struct {
	title     string
	section   domain.Section
	investors bool
	fields    []fieldSpec
}

// scalar reports whether the group edits company-level fields rather
// than a list section.
func (g group) scalar() bool {
	return g.section == "" && !g.investors
}

func addressAt(p *domain.CompanyProfile, i int) domain.Address {
	if i >= 0 && i < len(p.Addresses) {
		return p.Addresses[i]
	}
	return domain.Address{}
}

func contactAt(p *domain.CompanyProfile, i int) domain.Contact {
	if i >= 0 && i < len(p.Contacts) {
		return p.Contacts[i]
	}
	return domain.Contact{}
}

func officialAt(p *domain.CompanyProfile, i int) domain.KeyOfficial {
	if i >= 0 && i < len(p.Officials) {
		return p.Officials[i]
	}
	return domain.KeyOfficial{}
}

func financialAt(p *domain.CompanyProfile, i int) domain.FinancialEntry {
	if i >= 0 && i < len(p.Financials) {
		return p.Financials[i]
	}
	return domain.FinancialEntry{}
}

func roundAt(p *domain.CompanyProfile, i int) domain.FundingRound {
	if i >= 0 && i < len(p.FundingRounds) {
		return p.FundingRounds[i]
	}
	return domain.FundingRound{}
}

func investorAt(p *domain.CompanyProfile, round, i int) domain.Investor {
	r := roundAt(p, round)
	if i >= 0 && i < len(r.Investors) {
		return r.Investors[i]
	}
	return domain.Investor{}
}

func investmentAt(p *domain.CompanyProfile, i int) domain.CompanyInvestment {
	if i >= 0 && i < len(p.Investments) {
		return p.Investments[i]
	}
	return domain.CompanyInvestment{}
}

func filingAt(p *domain.CompanyProfile, i int) domain.RegulatoryFiling {
	if i >= 0 && i < len(p.Filings) {
		return p.Filings[i]
	}
	return domain.RegulatoryFiling{}
}

func legalCaseAt(p *domain.CompanyProfile, i int) domain.LegalCase {
	if i >= 0 && i < len(p.LegalCases) {
		return p.LegalCases[i]
	}
	return domain.LegalCase{}
}

func newsAt(p *domain.CompanyProfile, i int) domain.NewsItem {
	if i >= 0 && i < len(p.News) {
		return p.News[i]
	}
	return domain.NewsItem{}
}

func relationshipAt(p *domain.CompanyProfile, i int) domain.CompanyRelationship {
	if i >= 0 && i < len(p.Relationships) {
		return p.Relationships[i]
	}
	return domain.CompanyRelationship{}
}

func scalar(get func(p *domain.CompanyProfile) string) func(*domain.CompanyProfile, int, int) string {
	return func(p *domain.CompanyProfile, _, _ int) string { return get(p) }
}

// stepGroups returns the form layout for a wizard step.
func stepGroups(step domain.WizardStep) []group {
	switch step {
	case domain.StepIdentity:
		return []group{identityGroup}
	case domain.StepAddresses:
		return []group{addressesGroup, contactsGroup}
	case domain.StepOfficials:
		return []group{officialsGroup}
	case domain.StepFinancials:
		return []group{financialsGroup}
	case domain.StepFunding:
		return []group{fundingGroup, investorsGroup, investmentsGroup}
	case domain.StepFilings:
		return []group{filingsGroup, legalGroup}
	case domain.StepNews:
		return []group{newsGroup, relationshipsGroup}
	default:
		return nil
	}
}

var identityGroup = group{
	title: "Identity",
	fields: []fieldSpec{
		{name: "name", label: "Company name", placeholder: "required", get: scalar(func(p *domain.CompanyProfile) string { return p.Name })},
		{name: "sector", label: "Sector", placeholder: "required", get: scalar(func(p *domain.CompanyProfile) string { return p.Sector })},
		{name: "registration_number", label: "Registration number", get: scalar(func(p *domain.CompanyProfile) string { return p.RegistrationNumber })},
		{name: "tax_id", label: "Tax ID", get: scalar(func(p *domain.CompanyProfile) string { return p.TaxID })},
		{name: "industry", label: "Industry", get: scalar(func(p *domain.CompanyProfile) string { return p.Industry })},
		{name: "status", label: "Status", placeholder: "ACTIVE", get: scalar(func(p *domain.CompanyProfile) string { return p.Status })},
		{name: "founded_date", label: "Founded date", placeholder: "YYYY-MM-DD", get: scalar(func(p *domain.CompanyProfile) string { return p.FoundedDate })},
		{name: "website", label: "Website", get: scalar(func(p *domain.CompanyProfile) string { return p.Website })},
		{name: "email", label: "Email", get: scalar(func(p *domain.CompanyProfile) string { return p.Email })},
		{name: "phone", label: "Phone", get: scalar(func(p *domain.CompanyProfile) string { return p.Phone })},
		{name: "description", label: "Description", get: scalar(func(p *domain.CompanyProfile) string { return p.Description })},
		{name: "listing_status", label: "Listing status", placeholder: "LISTED / UNLISTED", get: scalar(func(p *domain.CompanyProfile) string { return p.ListingStatus })},
		{name: "stock_exchange", label: "Stock exchange", get: scalar(func(p *domain.CompanyProfile) string { return p.StockExchange })},
		{name: "ticker_symbol", label: "Ticker symbol", get: scalar(func(p *domain.CompanyProfile) string { return p.TickerSymbol })},
		{name: "employee_count", label: "Employees", get: scalar(func(p *domain.CompanyProfile) string { return p.EmployeeCount })},
		{name: "logo", label: "Logo file", placeholder: "path to image", kind: kindFile,
			get: scalar(func(p *domain.CompanyProfile) string {
				if p.Logo != nil {
					return p.Logo.Path
				}
				return ""
			})},
	},
}

var addressesGroup = group{
	title:   "Addresses",
	section: domain.SectionAddresses,
	fields: []fieldSpec{
		{name: "address_type", label: "Type", placeholder: "REGISTERED / BRANCH", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).Type }},
		{name: "address_line1", label: "Line 1", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).Line1 }},
		{name: "address_line2", label: "Line 2", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).Line2 }},
		{name: "city", label: "City", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).City }},
		{name: "state", label: "State", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).State }},
		{name: "postal_code", label: "Postal code", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).PostalCode }},
		{name: "country", label: "Country", get: func(p *domain.CompanyProfile, _, i int) string { return addressAt(p, i).Country }},
		{name: "is_primary", label: "Primary", kind: kindCheckbox, getBool: func(p *domain.CompanyProfile, _, i int) bool { return addressAt(p, i).IsPrimary }},
	},
}

var contactsGroup = group{
	title:   "Contacts",
	section: domain.SectionContacts,
	fields: []fieldSpec{
		{name: "contact_type", label: "Type", placeholder: "EMAIL / PHONE", get: func(p *domain.CompanyProfile, _, i int) string { return contactAt(p, i).Type }},
		{name: "contact_value", label: "Value", get: func(p *domain.CompanyProfile, _, i int) string { return contactAt(p, i).Value }},
		{name: "label", label: "Label", get: func(p *domain.CompanyProfile, _, i int) string { return contactAt(p, i).Label }},
		{name: "is_primary", label: "Primary", kind: kindCheckbox, getBool: func(p *domain.CompanyProfile, _, i int) bool { return contactAt(p, i).IsPrimary }},
	},
}

var officialsGroup = group{
	title:   "Key officials",
	section: domain.SectionOfficials,
	fields: []fieldSpec{
		{name: "name", label: "Name", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Name }},
		{name: "designation", label: "Designation", placeholder: "CEO, CFO, Director...", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Designation }},
		{name: "email", label: "Email", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Email }},
		{name: "phone", label: "Phone", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Phone }},
		{name: "appointed_date", label: "Appointed", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).AppointedDate }},
		{name: "education", label: "Education", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Education }},
		{name: "experience", label: "Experience", get: func(p *domain.CompanyProfile, _, i int) string { return officialAt(p, i).Experience }},
		{name: "is_current", label: "Current", kind: kindCheckbox, getBool: func(p *domain.CompanyProfile, _, i int) bool { return officialAt(p, i).IsCurrent }},
	},
}

var financialsGroup = group{
	title:   "Financial years",
	section: domain.SectionFinancials,
	fields: []fieldSpec{
		{name: "fiscal_year", label: "Fiscal year", placeholder: "2024", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).FiscalYear }},
		{name: "period_type", label: "Period", placeholder: "ANNUAL / QUARTERLY", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).PeriodType }},
		{name: "total_revenue", label: "Total revenue", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).TotalRevenue }},
		{name: "gross_profit", label: "Gross profit", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).GrossProfit }},
		{name: "operating_profit", label: "Operating profit", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).OperatingProfit }},
		{name: "net_profit", label: "Net profit", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).NetProfit }},
		{name: "ebitda", label: "EBITDA", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).EBITDA }},
		{name: "total_assets", label: "Total assets", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).TotalAssets }},
		{name: "current_assets", label: "Current assets", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).CurrentAssets }},
		{name: "total_liabilities", label: "Total liabilities", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).TotalLiabilities }},
		{name: "current_liabilities", label: "Current liabilities", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).CurrentLiabilities }},
		{name: "shareholders_equity", label: "Shareholders' equity", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).ShareholdersEquity }},
		{name: "operating_cash_flow", label: "Operating cash flow", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).OperatingCashFlow }},
		{name: "investing_cash_flow", label: "Investing cash flow", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).InvestingCashFlow }},
		{name: "financing_cash_flow", label: "Financing cash flow", get: func(p *domain.CompanyProfile, _, i int) string { return financialAt(p, i).FinancingCashFlow }},
	},
}

var fundingGroup = group{
	title:   "Funding rounds",
	section: domain.SectionFunding,
	fields: []fieldSpec{
		{name: "round_type", label: "Round type", placeholder: "SEED, SERIES_A...", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).RoundType }},
		{name: "round_name", label: "Round name", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).RoundName }},
		{name: "funding_date", label: "Date", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).FundingDate }},
		{name: "amount_raised", label: "Amount raised", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).AmountRaised }},
		{name: "pre_money_valuation", label: "Pre-money valuation", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).PreValuation }},
		{name: "post_money_valuation", label: "Post-money valuation", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).PostValuation }},
		{name: "status", label: "Status", placeholder: "COMPLETED", get: func(p *domain.CompanyProfile, _, i int) string { return roundAt(p, i).Status }},
	},
}

var investorsGroup = group{
	title:     "Investors",
	investors: true,
	fields: []fieldSpec{
		{name: "investor_name", label: "Investor name", get: func(p *domain.CompanyProfile, round, i int) string { return investorAt(p, round, i).Name }},
		{name: "investor_type", label: "Investor type", placeholder: "VC, ANGEL...", get: func(p *domain.CompanyProfile, round, i int) string { return investorAt(p, round, i).Type }},
		{name: "investment_amount", label: "Amount", get: func(p *domain.CompanyProfile, round, i int) string { return investorAt(p, round, i).Amount }},
		{name: "is_lead_investor", label: "Lead investor", kind: kindCheckbox, getBool: func(p *domain.CompanyProfile, round, i int) bool { return investorAt(p, round, i).IsLead }},
		{name: "has_board_seat", label: "Board seat", kind: kindCheckbox, getBool: func(p *domain.CompanyProfile, round, i int) bool { return investorAt(p, round, i).HasBoardSeat }},
	},
}

var investmentsGroup = group{
	title:   "Investments made",
	section: domain.SectionInvestments,
	fields: []fieldSpec{
		{name: "invested_company_name", label: "Company", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).TargetName }},
		{name: "investment_date", label: "Date", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).InvestmentDate }},
		{name: "investment_amount", label: "Amount", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).Amount }},
		{name: "stake_percentage", label: "Stake %", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).StakePercent }},
		{name: "investment_type", label: "Type", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).InvestmentType }},
		{name: "status", label: "Status", get: func(p *domain.CompanyProfile, _, i int) string { return investmentAt(p, i).Status }},
	},
}

var filingsGroup = group{
	title:   "Regulatory filings",
	section: domain.SectionFilings,
	fields: []fieldSpec{
		{name: "filing_type", label: "Filing type", placeholder: "ANNUAL_RETURN...", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).FilingType }},
		{name: "filing_date", label: "Date", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).FilingDate }},
		{name: "filing_number", label: "Number", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).FilingNumber }},
		{name: "authority", label: "Authority", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).Authority }},
		{name: "status", label: "Status", placeholder: "FILED", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).Status }},
		{name: "description", label: "Description", get: func(p *domain.CompanyProfile, _, i int) string { return filingAt(p, i).Description }},
		{name: "document", label: "Document file", placeholder: "path to document", kind: kindFile,
			get: func(p *domain.CompanyProfile, _, i int) string {
				if doc := filingAt(p, i).Document; doc != nil {
					return doc.Path
				}
				return ""
			}},
	},
}

var legalGroup = group{
	title:   "Legal cases",
	section: domain.SectionLegal,
	fields: []fieldSpec{
		{name: "case_number", label: "Case number", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).CaseNumber }},
		{name: "case_title", label: "Title", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).CaseTitle }},
		{name: "court_name", label: "Court", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).CourtName }},
		{name: "case_type", label: "Type", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).CaseType }},
		{name: "filed_date", label: "Filed", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).FiledDate }},
		{name: "status", label: "Status", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).Status }},
		{name: "description", label: "Description", get: func(p *domain.CompanyProfile, _, i int) string { return legalCaseAt(p, i).Description }},
	},
}

var newsGroup = group{
	title:   "News",
	section: domain.SectionNews,
	fields: []fieldSpec{
		{name: "title", label: "Title", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).Title }},
		{name: "source", label: "Source", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).Source }},
		{name: "url", label: "URL", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).URL }},
		{name: "published_date", label: "Published", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).PublishedDate }},
		{name: "category", label: "Category", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).Category }},
		{name: "summary", label: "Summary", get: func(p *domain.CompanyProfile, _, i int) string { return newsAt(p, i).Summary }},
	},
}

var relationshipsGroup = group{
	title:   "Relationships",
	section: domain.SectionRelationships,
	fields: []fieldSpec{
		{name: "related_company_name", label: "Related company", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).RelatedName }},
		{name: "relationship_type", label: "Type", placeholder: "SUBSIDIARY / PARENT_COMPANY", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).RelationshipType }},
		{name: "ownership_percentage", label: "Ownership %", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).OwnershipPercent }},
		{name: "effective_date", label: "Effective", placeholder: "YYYY-MM-DD", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).EffectiveDate }},
		{name: "status", label: "Status", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).Status }},
		{name: "notes", label: "Notes", get: func(p *domain.CompanyProfile, _, i int) string { return relationshipAt(p, i).Notes }},
	},
}
