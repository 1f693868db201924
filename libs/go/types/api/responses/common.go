package responses

// ErrorResponse is the envelope for request-level failures (malformed
// JSON, auth). Business failures never use it; they surface as per-item
// results with Success=false.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ResultItem is the common per-record outcome shape. Result lists always
// mirror the input order.
type ResultItem struct {
	Success bool   `json:"Success"`
	Remarks string `json:"Remarks,omitempty"`
}

// HealthResponse reports service liveness and CRM reachability.
type HealthResponse struct {
	Status       string `json:"status"`
	CRMReachable bool   `json:"crm_reachable"`
	Stage        string `json:"stage"`
}
