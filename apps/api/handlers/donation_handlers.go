package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// DonationHandler handles online donation transactions.
type DonationHandler struct {
	common          *CommonServices
	donationService interfaces.DonationService
}

type CreateDonationRequest = requests.CreateDonationRequest
type DonationListResponse = responses.DonationListResponse

// NewDonationHandler creates a handler with interface dependencies.
func NewDonationHandler(common *CommonServices, donationService interfaces.DonationService) *DonationHandler {
	return &DonationHandler{
		common:          common,
		donationService: donationService,
	}
}

// CreateDonations godoc
// @Summary Record online donations
// @Description Records gift transactions against CRM contacts, creating donor contacts as needed
// @Tags donations
// @Accept json
// @Produce json
// @Param request body CreateDonationRequest true "Donation batch"
// @Success 200 {object} DonationListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /CreateOnlineDonationTransactionWS [post]
func (h *DonationHandler) CreateDonations(c *gin.Context) {
	var req CreateDonationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp := h.donationService.CreateDonations(c.Request.Context(), req)
	sendSuccess(c, http.StatusOK, resp)
}
