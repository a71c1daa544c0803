package domain

// Address types accepted for company addresses.
const (
	AddressTypeRegistered = "REGISTERED"
	AddressTypeCorporate  = "CORPORATE"
	AddressTypeBranch     = "BRANCH"
	AddressTypeFactory    = "FACTORY"
)

// Address is one company address record.
type Address struct {
	Type       string `json:"address_type"`
	Line1      string `json:"address_line1"`
	Line2      string `json:"address_line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsPrimary  bool   `json:"is_primary"`
}

// NewAddress returns the seeded default address record.
func NewAddress() Address {
	return Address{Type: AddressTypeRegistered}
}

// Contact types accepted for company contacts.
const (
	ContactTypePhone   = "PHONE"
	ContactTypeEmail   = "EMAIL"
	ContactTypeFax     = "FAX"
	ContactTypeWebsite = "WEBSITE"
)

// Contact is one company contact record.
type Contact struct {
	Type      string `json:"contact_type"`
	Value     string `json:"contact_value"`
	Label     string `json:"label"`
	IsPrimary bool   `json:"is_primary"`
}

// NewContact returns the seeded default contact record.
func NewContact() Contact {
	return Contact{Type: ContactTypeEmail}
}

// KeyOfficial is one director or senior officer record.
type KeyOfficial struct {
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AppointedDate string `json:"appointed_date"`
	Education     string `json:"education"`
	Experience    string `json:"experience"`
	IsCurrent     bool   `json:"is_current"`
}

// NewKeyOfficial returns the seeded default official record.
func NewKeyOfficial() KeyOfficial {
	return KeyOfficial{IsCurrent: true}
}

// LegalCase is one legal proceeding record.
type LegalCase struct {
	CaseNumber  string `json:"case_number"`
	CaseTitle   string `json:"case_title"`
	CourtName   string `json:"court_name"`
	CaseType    string `json:"case_type"`
	FiledDate   string `json:"filed_date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// NewLegalCase returns the seeded default legal case record.
func NewLegalCase() LegalCase {
	return LegalCase{Status: "PENDING"}
}

// NewsItem is one company news record.
type NewsItem struct {
	Title         string `json:"title"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Category      string `json:"category"`
	Summary       string `json:"summary"`
}

// NewNewsItem returns the seeded default news record.
func NewNewsItem() NewsItem {
	return NewsItem{}
}
