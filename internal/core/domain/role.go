package domain

// Role is a subscription tier granted to a user session. The role maps
// to a permitted-section list and a permitted-action list via pure
// lookup tables; the wizard's first gate checks the modify actions.
type Role string

const (
	RoleFreemium   Role = "FREEMIUM"
	RolePremium    Role = "PREMIUM"
	RoleEnterprise Role = "ENTERPRISE"
	RoleAdmin      Role = "ADMIN"
)

// Action is an operation a role may perform on company records.
type Action string

const (
	ActionView   Action = "view"
	ActionExport Action = "export"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// roleSections maps each role to the profile sections it may view.
var roleSections = map[Role][]Section{
	RoleFreemium: {
		SectionIdentity, SectionAddresses, SectionContacts,
	},
	RolePremium: {
		SectionIdentity, SectionAddresses, SectionContacts,
		SectionOfficials, SectionFinancials, SectionNews,
	},
	RoleEnterprise: {
		SectionIdentity, SectionAddresses, SectionContacts,
		SectionOfficials, SectionFinancials, SectionFunding,
		SectionInvestments, SectionFilings, SectionLegal,
		SectionNews, SectionRelationships,
	},
	RoleAdmin: {
		SectionIdentity, SectionAddresses, SectionContacts,
		SectionOfficials, SectionFinancials, SectionFunding,
		SectionInvestments, SectionFilings, SectionLegal,
		SectionNews, SectionRelationships,
	},
}

// roleActions maps each role to its permitted actions.
var roleActions = map[Role][]Action{
	RoleFreemium:   {ActionView},
	RolePremium:    {ActionView, ActionExport},
	RoleEnterprise: {ActionView, ActionExport},
	RoleAdmin:      {ActionView, ActionExport, ActionCreate, ActionUpdate, ActionDelete},
}

// Valid reports whether the role is one of the four known tiers.
func (r Role) Valid() bool {
	_, ok := roleActions[r]
	return ok
}

// Sections returns the profile sections visible to the role.
func (r Role) Sections() []Section {
	return roleSections[r]
}

// Actions returns the actions permitted to the role.
func (r Role) Actions() []Action {
	return roleActions[r]
}

// Can reports whether the role permits the given action.
func (r Role) Can(action Action) bool {
	for _, a := range roleActions[r] {
		if a == action {
			return true
		}
	}
	return false
}

// CanModify reports whether the role may create, update or delete
// company records. Only modifying roles may open the wizard at all.
func (r Role) CanModify() bool {
	return r.Can(ActionCreate) && r.Can(ActionUpdate) && r.Can(ActionDelete)
}
