package responses

// CustomerResult is the per-item outcome for customer create/update.
// MasterCustomerID echoes the created ID, or the existing one on a
// duplicate rejection.
type CustomerResult struct {
	ResultItem
	Email            string `json:"Email"`
	MasterCustomerID string `json:"MasterCustomerID,omitempty"`
}

// CustomerListResponse is the envelope for CreateCustomerWS and
// UpdateCustomerWS.
type CustomerListResponse struct {
	Results []CustomerResult `json:"Results"`
}
