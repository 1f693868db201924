package responses

// ActivationCodeValidationResponse is the outcome of a code check.
// Status carries the portal-facing label (New/Activated/Expired).
type ActivationCodeValidationResponse struct {
	ResultItem
	ActivationCode string `json:"ActivationCode"`
	Status         string `json:"Status,omitempty"`
	TierName       string `json:"TierName,omitempty"`
	GroupType      string `json:"GroupType,omitempty"`
	IssueDate      string `json:"IssueDate,omitempty"`
}

// MembershipActivationResponse is the outcome of redeeming a code.
// CardQRCode is a base64-encoded PNG encoding the MasterCustomerID for
// the membership card.
type MembershipActivationResponse struct {
	ResultItem
	MasterCustomerID string `json:"MasterCustomerID"`
	TierHistoryID    string `json:"TierHistoryID,omitempty"`
	CardQRCode       string `json:"CardQRCode,omitempty"`
}

// PurchaseMemberResult is the per-member outcome of a purchase request.
type PurchaseMemberResult struct {
	ResultItem
	MasterCustomerID string `json:"MasterCustomerID"`
	TierHistoryID    string `json:"TierHistoryID,omitempty"`
}

// PurchaseBeforePaymentResponse is the envelope for the pre-payment leg.
type PurchaseBeforePaymentResponse struct {
	GroupID string                 `json:"GroupID,omitempty"`
	Results []PurchaseMemberResult `json:"Results"`
}

// PurchaseAfterPaymentResponse is the outcome of the post-payment leg.
type PurchaseAfterPaymentResponse struct {
	ResultItem
	MasterCustomerID     string `json:"MasterCustomerID"`
	PaymentTransactionID string `json:"PaymentTransactionID,omitempty"`
}

// MembershipUpgradeResponse is the outcome of an upgrade.
type MembershipUpgradeResponse struct {
	ResultItem
	MasterCustomerID     string  `json:"MasterCustomerID"`
	NewTierHistoryID     string  `json:"NewTierHistoryID,omitempty"`
	RefundTransactionID  string  `json:"RefundTransactionID,omitempty"`
	RefundAmount         float64 `json:"RefundAmount,omitempty"`
	PaymentTransactionID string  `json:"PaymentTransactionID,omitempty"`
}

// MembershipTerminationResponse is the outcome of a termination.
type MembershipTerminationResponse struct {
	ResultItem
	MasterCustomerID string `json:"MasterCustomerID"`
}

// MembershipStatusResponse is the read-only membership enquiry result.
type MembershipStatusResponse struct {
	ResultItem
	MasterCustomerID string `json:"MasterCustomerID"`
	TierName         string `json:"TierName,omitempty"`
	StartDate        string `json:"StartDate,omitempty"`
	EndDate          string `json:"EndDate,omitempty"`
	GroupType        string `json:"GroupType,omitempty"`
	MemberRole       string `json:"MemberRole,omitempty"`
}
