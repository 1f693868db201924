package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// EventHandler handles ticketing transactions and attendance.
type EventHandler struct {
	common       *CommonServices
	eventService interfaces.EventService
}

type CreateEventTransactionRequest = requests.CreateEventTransactionRequest
type UpdateAttendanceRequest = requests.UpdateAttendanceRequest
type EventTransactionListResponse = responses.EventTransactionListResponse
type AttendanceListResponse = responses.AttendanceListResponse

// NewEventHandler creates a handler with interface dependencies.
func NewEventHandler(common *CommonServices, eventService interfaces.EventService) *EventHandler {
	return &EventHandler{
		common:       common,
		eventService: eventService,
	}
}

// CreateEventTransactions godoc
// @Summary Record ticketing transactions
// @Description Records event ticketing transactions against CRM contacts
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventTransactionRequest true "Event transaction batch"
// @Success 200 {object} EventTransactionListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /CreateEventTransactionWS [post]
func (h *EventHandler) CreateEventTransactions(c *gin.Context) {
	var req CreateEventTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp := h.eventService.CreateEventTransactions(c.Request.Context(), req)
	sendSuccess(c, http.StatusOK, resp)
}

// UpdateAttendance godoc
// @Summary Update event attendance
// @Description Marks attendance against existing event transactions
// @Tags events
// @Accept json
// @Produce json
// @Param request body UpdateAttendanceRequest true "Attendance batch"
// @Success 200 {object} AttendanceListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /UpdateCustomerEventAttendanceWS [post]
func (h *EventHandler) UpdateAttendance(c *gin.Context) {
	var req UpdateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp := h.eventService.UpdateAttendance(c.Request.Context(), req)
	sendSuccess(c, http.StatusOK, resp)
}
