package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer profile operations.
type CustomerHandler struct {
	common          *CommonServices
	customerService interfaces.CustomerService
}

// Use types from the centralized packages
type CreateCustomerRequest = requests.CreateCustomerRequest
type UpdateCustomerRequest = requests.UpdateCustomerRequest
type CustomerListResponse = responses.CustomerListResponse

// NewCustomerHandler creates a handler with interface dependencies.
func NewCustomerHandler(common *CommonServices, customerService interfaces.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		common:          common,
		customerService: customerService,
	}
}

// CreateCustomers godoc
// @Summary Create customers
// @Description Creates portal customers as CRM contacts; duplicates are reported per item
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer batch"
// @Success 200 {object} CustomerListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /CreateCustomerWS [post]
func (h *CustomerHandler) CreateCustomers(c *gin.Context) {
	var req CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	resp := h.customerService.CreateCustomers(c.Request.Context(), req)
	sendSuccess(c, http.StatusOK, resp)
}

// UpdateCustomers godoc
// @Summary Update customers
// @Description Updates CRM contacts addressed by MasterCustomerID
// @Tags customers
// @Accept json
// @Produce json
// @Param request body UpdateCustomerRequest true "Customer update batch"
// @Success 200 {object} CustomerListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /UpdateCustomerWS [post]
func (h *CustomerHandler) UpdateCustomers(c *gin.Context) {
	var req UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	resp := h.customerService.UpdateCustomers(c.Request.Context(), req)
	sendSuccess(c, http.StatusOK, resp)
}
