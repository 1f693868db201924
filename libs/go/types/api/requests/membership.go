package requests

// ActivationCodeValidationRequest is the ActivationCodeValidation payload.
// CodeType distinguishes emailed activation codes from physical card
// serial numbers; both live in the same CRM table.
type ActivationCodeValidationRequest struct {
	ActivationCode string `json:"ActivationCode" binding:"required"`
	CodeType       string `json:"CodeType,omitempty"`
}

// MembershipActivationRequest redeems a validated activation code for a
// customer, placing them in the code's membership group.
type MembershipActivationRequest struct {
	ActivationCode   string `json:"ActivationCode" binding:"required"`
	MasterCustomerID string `json:"MasterCustomerID" binding:"required"`
	MemberRole       string `json:"MemberRole,omitempty"`
	Login            bool   `json:"Login"`
}

// MembershipPurchaseMember is one member in a purchase request.
type MembershipPurchaseMember struct {
	MasterCustomerID string `json:"MasterCustomerID" binding:"required"`
	MemberRole       string `json:"MemberRole" binding:"required"`
}

// PurchaseBeforePaymentRequest creates the pending membership records
// ahead of payment capture in the ticketing platform.
type PurchaseBeforePaymentRequest struct {
	TierName  string                     `json:"TierName" binding:"required"`
	GroupType string                     `json:"GroupType" binding:"required"`
	GroupID   string                     `json:"GroupID,omitempty"`
	Members   []MembershipPurchaseMember `json:"Members" binding:"required,min=1,dive"`
	Login     bool                       `json:"Login"`
}

// PurchaseAfterPaymentRequest records the settled payment and activates
// the pending tier history.
type PurchaseAfterPaymentRequest struct {
	MasterCustomerID string  `json:"MasterCustomerID" binding:"required"`
	TierHistoryID    string  `json:"TierHistoryID" binding:"required"`
	Amount           float64 `json:"Amount" binding:"required"`
	DiscountAmount   float64 `json:"DiscountAmount"`
	PaymentType      string  `json:"PaymentType" binding:"required"`
	SalesChannel     string  `json:"SalesChannel" binding:"required"`
	PaymentDate      string  `json:"PaymentDate,omitempty"`
	StartDate        string  `json:"StartDate" binding:"required"`
	EndDate          string  `json:"EndDate" binding:"required"`
	Login            bool    `json:"Login"`
}

// MembershipUpgradeRequest ends the current tier history and opens an
// upgraded one, refunding the unconsumed portion of the old tier.
type MembershipUpgradeRequest struct {
	MasterCustomerID string  `json:"MasterCustomerID" binding:"required"`
	NewTierName      string  `json:"NewTierName" binding:"required"`
	Amount           float64 `json:"Amount" binding:"required"`
	PaymentType      string  `json:"PaymentType" binding:"required"`
	SalesChannel     string  `json:"SalesChannel" binding:"required"`
	StartDate        string  `json:"StartDate" binding:"required"`
	EndDate          string  `json:"EndDate" binding:"required"`
	Login            bool    `json:"Login"`
}

// MembershipTerminationRequest end-dates a customer's current membership.
type MembershipTerminationRequest struct {
	MasterCustomerID string `json:"MasterCustomerID" binding:"required"`
	TerminationDate  string `json:"TerminationDate,omitempty"`
	Reason           string `json:"Reason,omitempty"`
	Login            bool   `json:"Login"`
}

// MembershipStatusEnquiryRequest reads a customer's current membership.
type MembershipStatusEnquiryRequest struct {
	MasterCustomerID string `json:"MasterCustomerID" binding:"required"`
}
