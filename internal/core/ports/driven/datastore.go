package driven

import "context"

// Table names in the remote relational datastore.
const (
	TableCompanies     = "companies"
	TableAddresses     = "company_addresses"
	TableContacts      = "company_contacts"
	TableOfficials     = "key_officials"
	TableFinancials    = "financial_statements"
	TableFundingRounds = "funding_rounds"
	TableFundingInvest = "funding_investors"
	TableInvestors     = "investors"
	TableInvestments   = "company_investments"
	TableFilings       = "regulatory_filings"
	TableLegalCases    = "legal_proceedings"
	TableNews          = "company_news"
	TableRelationships = "company_relationships"
)

// Row is one record exchanged with the datastore. Values are plain Go
// scalars; nil represents SQL NULL.
type Row map[string]any

// Filter selects rows for Select, Update and Delete.
//
// Eq matches rows where every listed column equals its value. Or matches
// rows satisfying at least one of the equality sets. When both are set
// they are combined with AND. A zero Filter matches every row.
type Filter struct {
	Eq map[string]any
	Or []map[string]any
}

// Datastore is the narrow contract of the remote relational datastore
// client: equality/OR-filtered CRUD against named tables. It is the only
// surface the submission translator writes through.
type Datastore interface {
	// Select returns the rows of table matching the filter.
	Select(ctx context.Context, table string, filter Filter) ([]Row, error)

	// Insert writes the given rows to table.
	Insert(ctx context.Context, table string, rows []Row) error

	// Update sets the given values on every row matching the filter.
	Update(ctx context.Context, table string, values Row, filter Filter) error

	// Delete removes every row matching the filter.
	Delete(ctx context.Context, table string, filter Filter) error
}
