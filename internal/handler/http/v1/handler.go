package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crash_alert_system/internal/config"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	crashService      service.CrashService
	deviceService     service.DeviceService
	dispatchService   service.DispatchService
	retractionService service.RetractionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	crashService service.CrashService,
	deviceService service.DeviceService,
	dispatchService service.DispatchService,
	retractionService service.RetractionService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		crashService:      crashService,
		deviceService:     deviceService,
		dispatchService:   dispatchService,
		retractionService: retractionService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// bindAndValidate читает JSON и проверяет теги validator; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError отображает доменные ошибки на HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrDeviceNotFound):
		log.WithError(err).Warn("Device not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
