package domain

// Filing status values.
const (
	FilingStatusFiled    = "FILED"
	FilingStatusPending  = "PENDING"
	FilingStatusRejected = "REJECTED"
)

// RegulatoryFiling is one regulatory filing record with an optional
// uploaded document. On edit, when no new document is attached the
// previously stored document reference is carried forward by matching
// (filing type, filing date, filing number) against existing filings.
type RegulatoryFiling struct {
	FilingType   string `json:"filing_type"`
	FilingDate   string `json:"filing_date"`
	FilingNumber string `json:"filing_number"`
	Authority    string `json:"authority"`
	Status       string `json:"status"`
	Description  string `json:"description"`

	// Document is a newly selected file, uploaded at submission time.
	Document *AssetFile `json:"document,omitempty"`

	// DocumentURL is the stored document reference, either freshly
	// uploaded or carried forward from the matching prior filing.
	DocumentURL string `json:"document_url"`
}

// NewRegulatoryFiling returns the seeded default filing record.
func NewRegulatoryFiling() RegulatoryFiling {
	return RegulatoryFiling{Status: FilingStatusFiled}
}

// CarryForwardKey identifies a filing for document carry-forward.
// Two filings with equal keys refer to the same submission to the
// regulator, so the stored document can be reused.
func (f RegulatoryFiling) CarryForwardKey() string {
	return f.FilingType + "|" + f.FilingDate + "|" + f.FilingNumber
}
