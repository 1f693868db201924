package requests

// EventTransactionItem is one ticketing transaction in a batch.
type EventTransactionItem struct {
	MasterCustomerID string `json:"MasterCustomerID" binding:"required"`
	EventName        string `json:"EventName" binding:"required"`
	EventCode        string `json:"EventCode" binding:"required"`
	EventDate        string `json:"EventDate,omitempty"`
	TicketQuantity   int    `json:"TicketQuantity" binding:"required,min=1"`
	SalesChannel     string `json:"SalesChannel,omitempty"`
}

// CreateEventTransactionRequest is the CreateEventTransactionWS payload.
type CreateEventTransactionRequest struct {
	EventList []EventTransactionItem `json:"EventList" binding:"required,min=1,dive"`
}

// AttendanceItem marks attendance against an existing event transaction.
type AttendanceItem struct {
	MasterCustomerID   string `json:"MasterCustomerID" binding:"required"`
	EventTransactionID string `json:"EventTransactionID" binding:"required"`
	Attended           bool   `json:"Attended"`
	AttendedOn         string `json:"AttendedOn,omitempty"`
}

// UpdateAttendanceRequest is the UpdateCustomerEventAttendanceWS payload.
type UpdateAttendanceRequest struct {
	AttendanceList []AttendanceItem `json:"AttendanceList" binding:"required,min=1,dive"`
}
