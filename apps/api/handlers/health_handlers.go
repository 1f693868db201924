package handlers

import (
	"net/http"

	"github.com/wkcda/crm-gateway/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports gateway liveness and CRM connectivity.
type HealthHandler struct {
	common *CommonServices
	stage  string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(common *CommonServices, stage string) *HealthHandler {
	return &HealthHandler{common: common, stage: stage}
}

// GetHealth godoc
// @Summary Health check
// @Description Reports gateway liveness and verifies CRM connectivity
// @Tags health
// @Produce json
// @Success 200 {object} responses.HealthResponse
// @Failure 503 {object} responses.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	resp := responses.HealthResponse{
		Status:       "ok",
		CRMReachable: true,
		Stage:        h.stage,
	}

	if err := h.common.crm.WhoAmI(c.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.CRMReachable = false
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
