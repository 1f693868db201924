package crm

// Status option-set values for wkcda_membershipactivation. The Expired
// value exists in the schema but is never written by this gateway; expiry
// is computed from the issue date at read time.
const (
	ActivationStatusNew       = 864630000
	ActivationStatusActivated = 864630001
	ActivationStatusExpired   = 864630002
)

// Status option-set values for wkcda_membershiptierhistory.
const (
	TierStatusPending = 864630000
	TierStatusActive  = 864630001
	TierStatusEnded   = 864630002
)

// Status option-set values for wkcda_membershipgrouprelationship.
const (
	RelationshipStatusActive = 864630000
	RelationshipStatusEnded  = 864630001
)

// Transaction kind values for wkcda_paymenttransaction.
const (
	PaymentKindPurchase = 864630000
	PaymentKindRefund   = 864630001
)

// Group type labels. Member caps are business policy from the membership
// product definition, enforced at write time.
const (
	GroupTypeIndividual = "Individual"
	GroupTypeDual       = "Dual"
	GroupTypeFamily     = "Family"
)

// Member role labels.
const (
	RolePrimaryMember = "Primary Member"
	RoleAddOnMember   = "Add-on Member"
)

// GroupMemberCap returns the maximum number of members allowed for a
// membership group type, or 0 when the type is unknown.
func GroupMemberCap(groupType string) int {
	switch groupType {
	case GroupTypeFamily:
		return 7
	case GroupTypeDual:
		return 2
	case GroupTypeIndividual:
		return 1
	default:
		return 0
	}
}

// ActivationStatusLabel maps a persisted activation status code to its
// portal-facing label.
func ActivationStatusLabel(code int) string {
	switch code {
	case ActivationStatusNew:
		return "New"
	case ActivationStatusActivated:
		return "Activated"
	case ActivationStatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}
