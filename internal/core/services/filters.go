package services

import (
	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// Row-inclusion predicates decide which list rows carry meaningful data
// and belong in the submitted write set. Create and edit mode use two
// independent predicate sets: create requires an identity field beyond
// the seeded defaults, while edit additionally accepts rows carrying
// only a date or an amount. The asymmetry is intentional; keep the two
// sets separate rather than merging them.
type rowPredicates struct {
	Address      func(domain.Address) bool
	Contact      func(domain.Contact) bool
	Official     func(domain.KeyOfficial) bool
	Financial    func(domain.FinancialEntry) bool
	FundingRound func(domain.FundingRound) bool
	Investment   func(domain.CompanyInvestment) bool
	Filing       func(domain.RegulatoryFiling) bool
	LegalCase    func(domain.LegalCase) bool
	News         func(domain.NewsItem) bool
	Relationship func(domain.CompanyRelationship) bool
	Investor     func(domain.Investor) bool
}

// predicatesFor returns the predicate set for the submission mode.
func predicatesFor(mode domain.WizardMode) rowPredicates {
	if mode == domain.ModeEdit {
		return editPredicates
	}
	return createPredicates
}

// Identity predicates shared by both modes.

func addressHasIdentity(a domain.Address) bool {
	return !isBlank(a.Line1) || !isBlank(a.Line2) || !isBlank(a.City) ||
		!isBlank(a.State) || !isBlank(a.PostalCode) || !isBlank(a.Country)
}

func contactHasIdentity(c domain.Contact) bool {
	return !isBlank(c.Value) || !isBlank(c.Label)
}

func officialHasIdentity(o domain.KeyOfficial) bool {
	return !isBlank(o.Name) || !isBlank(o.Designation) || !isBlank(o.Email) ||
		!isBlank(o.Phone) || !isBlank(o.Education) || !isBlank(o.Experience)
}

func financialHasData(f domain.FinancialEntry) bool {
	return !isBlank(f.FiscalYear) || !isBlank(f.TotalRevenue) ||
		!isBlank(f.GrossProfit) || !isBlank(f.OperatingProfit) ||
		!isBlank(f.NetProfit) || !isBlank(f.EBITDA) ||
		!isBlank(f.TotalAssets) || !isBlank(f.CurrentAssets) ||
		!isBlank(f.TotalLiabilities) || !isBlank(f.CurrentLiabilities) ||
		!isBlank(f.ShareholdersEquity) || !isBlank(f.OperatingCashFlow) ||
		!isBlank(f.InvestingCashFlow) || !isBlank(f.FinancingCashFlow)
}

func roundHasIdentity(r domain.FundingRound) bool {
	return r.RoundType != domain.DefaultRoundType ||
		r.RoundName != domain.DefaultRoundName ||
		len(r.Investors) > 0
}

func investmentHasIdentity(i domain.CompanyInvestment) bool {
	return !isBlank(i.TargetName)
}

func filingHasIdentity(f domain.RegulatoryFiling) bool {
	return !isBlank(f.FilingType) || !isBlank(f.FilingNumber) ||
		!isBlank(f.Authority) || !isBlank(f.Description) || f.Document != nil
}

func legalCaseHasIdentity(l domain.LegalCase) bool {
	return !isBlank(l.CaseNumber) || !isBlank(l.CaseTitle) ||
		!isBlank(l.CourtName) || !isBlank(l.CaseType) || !isBlank(l.Description)
}

func newsHasIdentity(n domain.NewsItem) bool {
	return !isBlank(n.Title) || !isBlank(n.Source) || !isBlank(n.URL) ||
		!isBlank(n.Category) || !isBlank(n.Summary)
}

func relationshipHasIdentity(r domain.CompanyRelationship) bool {
	// A relationship without a related company name cannot be resolved
	// to an endpoint, in either mode.
	return !isBlank(r.RelatedName)
}

func investorHasIdentity(i domain.Investor) bool {
	// An investor without a name cannot be resolved to a canonical entity.
	return !isBlank(i.Name)
}

// createPredicates is the create-mode inclusion rule set: a row must
// carry identity data beyond its seeded defaults.
var createPredicates = rowPredicates{
	Address:      addressHasIdentity,
	Contact:      contactHasIdentity,
	Official:     officialHasIdentity,
	Financial:    financialHasData,
	FundingRound: roundHasIdentity,
	Investment:   investmentHasIdentity,
	Filing:       filingHasIdentity,
	LegalCase:    legalCaseHasIdentity,
	News:         newsHasIdentity,
	Relationship: relationshipHasIdentity,
	Investor:     investorHasIdentity,
}

// editPredicates is the edit-mode rule set: identity data as in create,
// or a date/amount on its own.
var editPredicates = rowPredicates{
	Address: addressHasIdentity,
	Contact: contactHasIdentity,
	Official: func(o domain.KeyOfficial) bool {
		return officialHasIdentity(o) || !isBlank(o.AppointedDate)
	},
	Financial: financialHasData,
	FundingRound: func(r domain.FundingRound) bool {
		return roundHasIdentity(r) || !isBlank(r.FundingDate) ||
			!isBlank(r.AmountRaised) || !isBlank(r.PreValuation) ||
			!isBlank(r.PostValuation)
	},
	Investment: func(i domain.CompanyInvestment) bool {
		return investmentHasIdentity(i) || !isBlank(i.InvestmentDate) || !isBlank(i.Amount)
	},
	Filing: func(f domain.RegulatoryFiling) bool {
		return filingHasIdentity(f) || !isBlank(f.FilingDate)
	},
	LegalCase: func(l domain.LegalCase) bool {
		return legalCaseHasIdentity(l) || !isBlank(l.FiledDate)
	},
	News: func(n domain.NewsItem) bool {
		return newsHasIdentity(n) || !isBlank(n.PublishedDate)
	},
	Relationship: relationshipHasIdentity,
	Investor:     investorHasIdentity,
}
