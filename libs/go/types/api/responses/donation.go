package responses

// DonationResult is the per-item outcome for a gift transaction.
type DonationResult struct {
	ResultItem
	Email             string `json:"Email"`
	GiftTransactionID string `json:"GiftTransactionID,omitempty"`
	MasterCustomerID  string `json:"MasterCustomerID,omitempty"`
}

// DonationListResponse is the envelope for CreateOnlineDonationTransactionWS.
type DonationListResponse struct {
	Results []DonationResult `json:"Results"`
}
