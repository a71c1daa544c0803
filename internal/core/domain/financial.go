package domain

// Financial period types.
const (
	PeriodTypeAnnual    = "ANNUAL"
	PeriodTypeQuarterly = "QUARTERLY"
	PeriodTypeHalfYear  = "HALF_YEARLY"
)

// Core financial input field names. Updating any of these on the flat
// legacy single-entry form triggers immediate ratio recomputation.
const (
	FieldTotalRevenue       = "total_revenue"
	FieldNetProfit          = "net_profit"
	FieldTotalAssets        = "total_assets"
	FieldCurrentAssets      = "current_assets"
	FieldTotalLiabilities   = "total_liabilities"
	FieldCurrentLiabilities = "current_liabilities"
	FieldShareholdersEquity = "shareholders_equity"
)

// CoreFinancialFields lists the seven input fields whose change triggers
// derived ratio recomputation.
var CoreFinancialFields = []string{
	FieldTotalRevenue,
	FieldNetProfit,
	FieldTotalAssets,
	FieldCurrentAssets,
	FieldTotalLiabilities,
	FieldCurrentLiabilities,
	FieldShareholdersEquity,
}

// IsCoreFinancialField reports whether name is one of the seven ratio inputs.
func IsCoreFinancialField(name string) bool {
	for _, f := range CoreFinancialFields {
		if f == name {
			return true
		}
	}
	return false
}

// FinancialRatios holds the five derived metrics computed from a
// financial entry. Each ratio is nil when its inputs are absent or its
// denominator is zero; they are never editable by the user.
type FinancialRatios struct {
	DebtToEquity   *float64 `json:"debt_to_equity"`
	CurrentRatio   *float64 `json:"current_ratio"`
	ReturnOnEquity *float64 `json:"return_on_equity"`
	ReturnOnAssets *float64 `json:"return_on_assets"`
	ProfitMargin   *float64 `json:"profit_margin"`
}

// FinancialEntry is one reporting period's figures. Input fields are
// form text and are coerced to numbers at submission time; the embedded
// ratios are recomputed whenever any field in the entry changes.
type FinancialEntry struct {
	FiscalYear string `json:"fiscal_year"`
	PeriodType string `json:"period_type"`

	TotalRevenue       string `json:"total_revenue"`
	GrossProfit        string `json:"gross_profit"`
	OperatingProfit    string `json:"operating_profit"`
	NetProfit          string `json:"net_profit"`
	EBITDA             string `json:"ebitda"`
	TotalAssets        string `json:"total_assets"`
	CurrentAssets      string `json:"current_assets"`
	TotalLiabilities   string `json:"total_liabilities"`
	CurrentLiabilities string `json:"current_liabilities"`
	ShareholdersEquity string `json:"shareholders_equity"`
	OperatingCashFlow  string `json:"operating_cash_flow"`
	InvestingCashFlow  string `json:"investing_cash_flow"`
	FinancingCashFlow  string `json:"financing_cash_flow"`

	Ratios FinancialRatios `json:"ratios"`
}

// NewFinancialEntry returns the seeded default financial record.
func NewFinancialEntry() FinancialEntry {
	return FinancialEntry{PeriodType: PeriodTypeAnnual}
}
