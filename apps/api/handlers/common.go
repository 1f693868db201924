package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/client/dataverse"
	"github.com/wkcda/crm-gateway/libs/go/constants"
	"github.com/wkcda/crm-gateway/libs/go/interfaces"
	"github.com/wkcda/crm-gateway/libs/go/logger"
	"github.com/wkcda/crm-gateway/libs/go/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the shared dependencies used across handlers.
type CommonServices struct {
	crm               dataverse.API
	logger            *zap.Logger
	CustomerService   interfaces.CustomerService
	ActivationService interfaces.ActivationService
	MembershipService interfaces.MembershipService
	DonationService   interfaces.DonationService
	EventService      interfaces.EventService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices.
type CommonServicesConfig struct {
	CRM               dataverse.API
	Logger            *zap.Logger
	CustomerService   interfaces.CustomerService
	ActivationService interfaces.ActivationService
	MembershipService interfaces.MembershipService
	DonationService   interfaces.DonationService
	EventService      interfaces.EventService
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		crm:               config.CRM,
		logger:            config.Logger,
		CustomerService:   config.CustomerService,
		ActivationService: config.ActivationService,
		MembershipService: config.MembershipService,
		DonationService:   config.DonationService,
		EventService:      config.EventService,
	}
}

// NewCommonServicesFromCRM wires the full service stack on top of a CRM
// client. This is the production constructor.
func NewCommonServicesFromCRM(crm dataverse.API, receipts interfaces.ReceiptSender) *CommonServices {
	optionSets := services.NewOptionSetService(crm)
	contacts := services.NewContactResolver(crm, optionSets)

	return NewCommonServices(CommonServicesConfig{
		CRM:               crm,
		CustomerService:   services.NewCustomerService(crm, contacts, optionSets),
		ActivationService: services.NewActivationService(crm, contacts, optionSets),
		MembershipService: services.NewMembershipService(crm, contacts, optionSets),
		DonationService:   services.NewDonationService(crm, contacts, optionSets, receipts),
		EventService:      services.NewEventService(crm, contacts, optionSets),
	})
}

// sendError is a helper function that sends a standard error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleCRMError maps a CRM failure onto the normalized HTTP contract:
// credential problems are 401, everything else is a generic 500 so CRM
// internals never leak to the portal.
func handleCRMError(c *gin.Context, err error) {
	if dataverse.IsAuthError(err) {
		sendError(c, http.StatusUnauthorized, "CRM authentication failed", err)
		return
	}
	sendError(c, http.StatusInternalServerError, "Internal server error", err)
}

// bindJSON decodes the request body, answering 400 with the fixed
// malformed-payload message the portal string-matches on.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		sendError(c, http.StatusBadRequest, constants.RemarkInvalidJSON, err)
		return false
	}
	return true
}

// sendSuccess is a helper function that sends a success response.
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
