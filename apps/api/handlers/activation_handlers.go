package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/types/api/requests"
	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// ActivationHandler handles activation-code validation and redemption.
type ActivationHandler struct {
	common            *CommonServices
	activationService interfaces.ActivationService
}

type ActivationCodeValidationRequest = requests.ActivationCodeValidationRequest
type MembershipActivationRequest = requests.MembershipActivationRequest
type ActivationCodeValidationResponse = responses.ActivationCodeValidationResponse
type MembershipActivationResponse = responses.MembershipActivationResponse

// NewActivationHandler creates a handler with interface dependencies.
func NewActivationHandler(common *CommonServices, activationService interfaces.ActivationService) *ActivationHandler {
	return &ActivationHandler{
		common:            common,
		activationService: activationService,
	}
}

// ValidateCode godoc
// @Summary Validate an activation code
// @Description Checks an activation code's status without redeeming it
// @Tags membership
// @Accept json
// @Produce json
// @Param request body ActivationCodeValidationRequest true "Activation code"
// @Success 200 {object} ActivationCodeValidationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /ActivationCodeValidation [post]
func (h *ActivationHandler) ValidateCode(c *gin.Context) {
	var req ActivationCodeValidationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.activationService.ValidateCode(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}

// Activate godoc
// @Summary Redeem an activation code
// @Description Redeems a code for a customer and opens their membership
// @Tags membership
// @Accept json
// @Produce json
// @Param request body MembershipActivationRequest true "Activation payload"
// @Success 200 {object} MembershipActivationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /MembershipActivationWS [post]
func (h *ActivationHandler) Activate(c *gin.Context) {
	var req MembershipActivationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.activationService.Activate(c.Request.Context(), req)
	if err != nil {
		handleCRMError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, resp)
}
