package domain

// Relationship types. The type determines edge direction: PARENT_COMPANY
// means the related company is the parent and the current company the
// subsidiary; every other type places the current company on the
// parent/owner side.
const (
	RelationshipParentCompany = "PARENT_COMPANY"
	RelationshipSubsidiary    = "SUBSIDIARY"
	RelationshipJointVenture  = "JOINT_VENTURE"
	RelationshipAffiliate     = "AFFILIATE"
	RelationshipPartnership   = "PARTNERSHIP"
)

// CompanyRelationship is a directed edge between the current company and
// a named related company. The related company is resolved (or created
// as a placeholder) at submission time.
type CompanyRelationship struct {
	RelatedName      string `json:"related_company_name"`
	RelationshipType string `json:"relationship_type"`
	OwnershipPercent string `json:"ownership_percentage"`
	EffectiveDate    string `json:"effective_date"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
}

// NewCompanyRelationship returns the seeded default relationship record.
func NewCompanyRelationship() CompanyRelationship {
	return CompanyRelationship{
		RelationshipType: RelationshipSubsidiary,
		Status:           "ACTIVE",
	}
}

// Endpoints returns the (parent, subsidiary) identifier pair for the
// edge between companyID and relatedID given the relationship type.
func (r CompanyRelationship) Endpoints(companyID, relatedID string) (parent, subsidiary string) {
	if r.RelationshipType == RelationshipParentCompany {
		return relatedID, companyID
	}
	return companyID, relatedID
}
