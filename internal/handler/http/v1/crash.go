package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Report a crash
// @Description Report a detected crash. The first report of an incident creates it, later ones are merged as duplicates. Requires API key.
// @Tags Crashes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body ReportCrashRequest true "Crash report"
// @Success 201 {object} ReportCrashResponse "New incident"
// @Success 200 {object} ReportCrashResponse "Duplicate report"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes [post]
func (h *Handler) reportCrash(c *gin.Context) {
	var input ReportCrashRequest
	log := h.logger.WithField("method", "reportCrash")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.crashService.ReportCrash(c.Request.Context(), DTOToCrashReport(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	status := http.StatusOK
	if result.IsNewIncident {
		status = http.StatusCreated
	}
	c.JSON(status, ReportCrashResponse{IsNewIncident: result.IsNewIncident})
}

// @Summary Get incident by ID
// @Description Get the canonical crash record with all duplicate reports. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} CrashResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/{incidentId} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "getIncident").WithField("incident_id", id)

	record, err := h.crashService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCrashResponse(record))
}

// @Summary Get incident statistics
// @Description Get report count and distinct reporters of an incident. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/{incidentId}/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "getStats").WithField("incident_id", id)

	stats, err := h.crashService.GetStats(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary List delivery attempts
// @Description List per-device delivery attempts of an incident. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {array} AttemptResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/{incidentId}/attempts [get]
func (h *Handler) listAttempts(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "listAttempts").WithField("incident_id", id)

	attempts, err := h.dispatchService.ListAttempts(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttemptResponses(attempts))
}

// @Summary Claim an incident, suppressing automatic dispatch
// @Description Atomically move an incident from unclaimed to claimed. Exactly one caller gets claimed=true. Operator override: the queued dispatch job then loses the claim and no alerts are sent for this incident. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} ClaimResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/{incidentId}/claim [post]
func (h *Handler) claimIncident(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "claimIncident").WithField("incident_id", id)

	result, err := h.crashService.ClaimForProcessing(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if result.Claimed {
		log.Warn("Incident claimed manually, automatic dispatch suppressed")
	}
	c.JSON(http.StatusOK, ClaimResponse{Claimed: result.Claimed})
}

// @Summary Mark an incident completed
// @Description Move a claimed incident to completed. Any other state is a no-op. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} CompleteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/{incidentId}/complete [post]
func (h *Handler) completeIncident(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "completeIncident").WithField("incident_id", id)

	result, err := h.crashService.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CompleteResponse{Completed: result.Completed})
}

// @Summary List unprocessed incidents
// @Description List incidents nobody has claimed yet. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CrashResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crashes/unprocessed [get]
func (h *Handler) listUnprocessed(c *gin.Context) {
	log := h.logger.WithField("method", "listUnprocessed")

	records, err := h.crashService.GetUnprocessedIncidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCrashResponses(records))
}

// @Summary List incidents of a victim
// @Description List crash records where the user is the victim, newest first. Requires API key.
// @Tags Crashes
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "Victim user ID"
// @Success 200 {array} CrashResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /victims/{userId}/crashes [get]
func (h *Handler) listVictimIncidents(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "listVictimIncidents").WithField("user_id", userID)

	records, err := h.crashService.GetIncidentsForVictim(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCrashResponses(records))
}
