package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crash_alert_system/internal/models"
)

// @Summary Retract open alerts
// @Description Retract every open alert of a scope when the app is opened or help is confirmed. Idempotent: an empty scope returns 0. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param retract body RetractRequest true "Retraction request"
// @Success 200 {object} RetractResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/retract [post]
func (h *Handler) retractAlerts(c *gin.Context) {
	var input RetractRequest
	log := h.logger.WithField("method", "retractAlerts")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.retractionService.Retract(c.Request.Context(), input.ScopeKey, models.RetractReason(input.Reason))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RetractResponse{
		ScopeKey:       result.ScopeKey,
		Reason:         string(result.Reason),
		RetractedCount: result.RetractedCount,
	})
}

// @Summary List open alerts
// @Description List alerts of a scope that are still shown on devices. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param scopeKey path string true "Scope key: recipient user ID or victim:<user ID>"
// @Success 200 {object} OpenAlertsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{scopeKey} [get]
func (h *Handler) listOpenAlerts(c *gin.Context) {
	scopeKey := c.Param("scopeKey")
	log := h.logger.WithField("method", "listOpenAlerts").WithField("scope_key", scopeKey)

	alerts, err := h.retractionService.OpenAlerts(c.Request.Context(), scopeKey)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOpenAlertsResponse(scopeKey, alerts))
}
