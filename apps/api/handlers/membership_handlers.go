package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles the paid membership lifecycle.
type MembershipHandler struct {
	common            *CommonServices
	membershipService interfaces.MembershipService
}

type PurchaseBeforePaymentRequest = requests.PurchaseBeforePaymentRequest
type PurchaseAfterPaymentRequest = requests.PurchaseAfterPaymentRequest
type MembershipUpgradeRequest = requests.MembershipUpgradeRequest
type MembershipTerminationRequest = requests.MembershipTerminationRequest
type MembershipStatusEnquiryRequest = requests.MembershipStatusEnquiryRequest

type PurchaseBeforePaymentResponse = responses.PurchaseBeforePaymentResponse
type PurchaseAfterPaymentResponse = responses.PurchaseAfterPaymentResponse
type MembershipUpgradeResponse = responses.MembershipUpgradeResponse
type MembershipTerminationResponse = responses.MembershipTerminationResponse
type MembershipStatusResponse = responses.MembershipStatusResponse

// NewMembershipHandler creates a handler with interface dependencies.
func NewMembershipHandler(common *CommonServices, membershipService interfaces.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		common:            common,
		membershipService: membershipService,
	}
}

// PurchaseBeforePayment godoc
// @Summary Start a membership purchase
// @Description Creates pending membership records ahead of payment capture
// @Tags membership
// @Accept json
// @Produce json
// @Param request body PurchaseBeforePaymentRequest true "Purchase payload"
// @Success 200 {object} PurchaseBeforePaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /PaidMembershipPurchaseBeforePayment [post]
func (h *MembershipHandler) PurchaseBeforePayment(c *gin.Context) {
	var req PurchaseBeforePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.PurchaseBeforePayment(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// PurchaseAfterPayment godoc
// @Summary Settle a membership purchase
// @Description Records the settled payment and activates the pending membership
// @Tags membership
// @Accept json
// @Produce json
// @Param request body PurchaseAfterPaymentRequest true "Settlement payload"
// @Success 200 {object} PurchaseAfterPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /PaidMembershipPurchaseAfterPayment [post]
func (h *MembershipHandler) PurchaseAfterPayment(c *gin.Context) {
	var req PurchaseAfterPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.PurchaseAfterPayment(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// Upgrade godoc
// @Summary Upgrade a membership
// @Description Ends the current tier, refunds the unconsumed portion and opens the upgraded tier
// @Tags membership
// @Accept json
// @Produce json
// @Param request body MembershipUpgradeRequest true "Upgrade payload"
// @Success 200 {object} MembershipUpgradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /MembershipUpgradeWS [post]
func (h *MembershipHandler) Upgrade(c *gin.Context) {
	var req MembershipUpgradeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.Upgrade(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// Terminate godoc
// @Summary Terminate a membership
// @Description End-dates the active membership and its group placements
// @Tags membership
// @Accept json
// @Produce json
// @Param request body MembershipTerminationRequest true "Termination payload"
// @Success 200 {object} MembershipTerminationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /MembershipTerminationWS [post]
func (h *MembershipHandler) Terminate(c *gin.Context) {
	var req MembershipTerminationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.Terminate(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// Status godoc
// @Summary Membership status enquiry
// @Description Reads the customer's current membership tier and group placement
// @Tags membership
// @Accept json
// @Produce json
// @Param request body MembershipStatusEnquiryRequest true "Enquiry payload"
// @Success 200 {object} MembershipStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /MembershipStatusEnquiryWS [post]
func (h *MembershipHandler) Status(c *gin.Context) {
	var req MembershipStatusEnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.Status(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}
