package responses

// EventTransactionResult is the per-item outcome for a ticketing record.
type EventTransactionResult struct {
	ResultItem
	MasterCustomerID   string `json:"MasterCustomerID"`
	EventTransactionID string `json:"EventTransactionID,omitempty"`
}

// EventTransactionListResponse is the envelope for CreateEventTransactionWS.
type EventTransactionListResponse struct {
	Results []EventTransactionResult `json:"Results"`
}

// AttendanceResult is the per-item outcome for an attendance update.
type AttendanceResult struct {
	ResultItem
	MasterCustomerID   string `json:"MasterCustomerID"`
	EventTransactionID string `json:"EventTransactionID"`
}

// AttendanceListResponse is the envelope for UpdateCustomerEventAttendanceWS.
type AttendanceListResponse struct {
	Results []AttendanceResult `json:"Results"`
}
