package domain

// Funding round types.
const (
	RoundTypeSeed     = "SEED"
	RoundTypeAngel    = "ANGEL"
	RoundTypeSeriesA  = "SERIES_A"
	RoundTypeSeriesB  = "SERIES_B"
	RoundTypeSeriesC  = "SERIES_C"
	RoundTypeDebt     = "DEBT"
	RoundTypeBridge   = "BRIDGE"
	RoundTypeIPO      = "IPO"
	RoundTypePrivate  = "PRIVATE_EQUITY"
	RoundTypeStrategc = "STRATEGIC"
)

// Seeded defaults for a new funding round. A round still carrying both
// defaults with no date or amount is treated as an empty placeholder row.
const (
	DefaultRoundType = RoundTypeSeed
	DefaultRoundName = "Seed Round"
)

// Investor types.
const (
	InvestorTypeVC        = "VENTURE_CAPITAL"
	InvestorTypeAngel     = "ANGEL"
	InvestorTypePE        = "PRIVATE_EQUITY"
	InvestorTypeCorporate = "CORPORATE"
	InvestorTypeOther     = "OTHER"
)

// Investor is one contribution within a funding round. Investor records
// exist only nested inside their round; at submission each distinct
// (name, type) pair is resolved to a canonical investor entity before
// the round-investor association is written.
type Investor struct {
	Name         string `json:"investor_name"`
	Type         string `json:"investor_type"`
	Amount       string `json:"investment_amount"`
	IsLead       bool   `json:"is_lead_investor"`
	HasBoardSeat bool   `json:"has_board_seat"`
}

// NewInvestor returns the seeded default investor record.
func NewInvestor() Investor {
	return Investor{Type: InvestorTypeVC}
}

// FundingRound is one capital raise with its nested investor list.
type FundingRound struct {
	RoundType     string `json:"round_type"`
	RoundName     string `json:"round_name"`
	FundingDate   string `json:"funding_date"`
	AmountRaised  string `json:"amount_raised"`
	PreValuation  string `json:"pre_money_valuation"`
	PostValuation string `json:"post_money_valuation"`
	Status        string `json:"status"`

	Investors []Investor `json:"investors"`
}

// NewFundingRound returns the seeded default funding round record.
func NewFundingRound() FundingRound {
	return FundingRound{
		RoundType: DefaultRoundType,
		RoundName: DefaultRoundName,
		Status:    "COMPLETED",
		Investors: []Investor{},
	}
}

// Investment status values.
const (
	InvestmentStatusActive = "ACTIVE"
	InvestmentStatusExited = "EXITED"
)

// CompanyInvestment records this company investing in another named
// target. The target is resolved (or created as a placeholder company)
// at submission time.
type CompanyInvestment struct {
	TargetName     string `json:"invested_company_name"`
	InvestmentDate string `json:"investment_date"`
	Amount         string `json:"investment_amount"`
	StakePercent   string `json:"stake_percentage"`
	InvestmentType string `json:"investment_type"`
	Status         string `json:"status"`
}

// NewCompanyInvestment returns the seeded default investment record.
func NewCompanyInvestment() CompanyInvestment {
	return CompanyInvestment{Status: InvestmentStatusActive}
}
