package domain

// CompanyStatus values accepted for the company status field.
const (
	CompanyStatusActive    = "ACTIVE"
	CompanyStatusInactive  = "INACTIVE"
	CompanyStatusDissolved = "DISSOLVED"
	CompanyStatusAcquired  = "ACQUIRED"
)

// ListingStatus values accepted for the listing status field.
const (
	ListingStatusListed   = "LISTED"
	ListingStatusUnlisted = "UNLISTED"
	ListingStatusDelisted = "DELISTED"
)

// AssetFile references a local file selected for upload.
// The file is read and uploaded at submission time, not when selected.
type AssetFile struct {
	// Name is the original file name, used to build the stored path.
	Name string `json:"name"`

	// Path is the local filesystem path to read the content from.
	Path string `json:"path"`

	// ContentType is the MIME type sent with the upload.
	ContentType string `json:"content_type"`
}

// CompanyProfile is the aggregate form state edited by the wizard.
// It holds every scalar company attribute plus the ordered entity lists.
// A profile is exclusively owned by one wizard session; it is serialized
// wholesale to the draft store and restored wholesale on resume.
type CompanyProfile struct {
	// ID is the company identifier. Empty until submission in create
	// mode; populated from the existing record in edit mode.
	ID string `json:"id"`

	// Name is the display name. Required.
	Name string `json:"name"`

	// Sector is the business sector. Required.
	Sector string `json:"sector"`

	RegistrationNumber string `json:"registration_number"`
	TaxID              string `json:"tax_id"`
	Industry           string `json:"industry"`
	Status             string `json:"status"`
	FoundedDate        string `json:"founded_date"`
	Website            string `json:"website"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Description        string `json:"description"`
	ListingStatus      string `json:"listing_status"`
	StockExchange      string `json:"stock_exchange"`
	TickerSymbol       string `json:"ticker_symbol"`
	EmployeeCount      string `json:"employee_count"`

	// Logo is an optional file selected for upload. A failed logo upload
	// never aborts submission; the company row is written without it.
	Logo *AssetFile `json:"logo,omitempty"`

	// LogoURL is the stored logo reference. In edit mode it carries the
	// previously uploaded URL until a new logo replaces it.
	LogoURL string `json:"logo_url"`

	// Ordered entity lists. Always non-nil: an untouched session holds a
	// single seeded default record per list rather than absence.
	Addresses     []Address             `json:"addresses"`
	Contacts      []Contact             `json:"contacts"`
	Officials     []KeyOfficial         `json:"officials"`
	Financials    []FinancialEntry      `json:"financials"`
	FundingRounds []FundingRound        `json:"funding_rounds"`
	Investments   []CompanyInvestment   `json:"investments"`
	Filings       []RegulatoryFiling    `json:"filings"`
	LegalCases    []LegalCase           `json:"legal_cases"`
	News          []NewsItem            `json:"news"`
	Relationships []CompanyRelationship `json:"relationships"`
}

// CompanySummary is the listing projection of a company row, used by
// `atlas company list` and the edit-mode picker.
type CompanySummary struct {
	ID        string
	Name      string
	Sector    string
	Status    string
	UpdatedAt string
}

// NewCompanyProfile returns an empty profile with every list seeded with
// one default record, ready for the wizard to edit.
func NewCompanyProfile() *CompanyProfile {
	return &CompanyProfile{
		Status:        CompanyStatusActive,
		ListingStatus: ListingStatusUnlisted,
		Addresses:     []Address{NewAddress()},
		Contacts:      []Contact{NewContact()},
		Officials:     []KeyOfficial{NewKeyOfficial()},
		Financials:    []FinancialEntry{NewFinancialEntry()},
		FundingRounds: []FundingRound{NewFundingRound()},
		Investments:   []CompanyInvestment{NewCompanyInvestment()},
		Filings:       []RegulatoryFiling{NewRegulatoryFiling()},
		LegalCases:    []LegalCase{NewLegalCase()},
		News:          []NewsItem{NewNewsItem()},
		Relationships: []CompanyRelationship{NewCompanyRelationship()},
	}
}

// EnsureLists replaces any nil list with a single seeded default record.
// Used after deserializing drafts or imported profiles so the wizard
// invariant of non-nil lists holds regardless of input.
func (p *CompanyProfile) EnsureLists() {
	if p.Addresses == nil {
		p.Addresses = []Address{NewAddress()}
	}
	if p.Contacts == nil {
		p.Contacts = []Contact{NewContact()}
	}
	if p.Officials == nil {
		p.Officials = []KeyOfficial{NewKeyOfficial()}
	}
	if p.Financials == nil {
		p.Financials = []FinancialEntry{NewFinancialEntry()}
	}
	if p.FundingRounds == nil {
		p.FundingRounds = []FundingRound{NewFundingRound()}
	}
	if p.Investments == nil {
		p.Investments = []CompanyInvestment{NewCompanyInvestment()}
	}
	if p.Filings == nil {
		p.Filings = []RegulatoryFiling{NewRegulatoryFiling()}
	}
	if p.LegalCases == nil {
		p.LegalCases = []LegalCase{NewLegalCase()}
	}
	if p.News == nil {
		p.News = []NewsItem{NewNewsItem()}
	}
	if p.Relationships == nil {
		p.Relationships = []CompanyRelationship{NewCompanyRelationship()}
	}
}
