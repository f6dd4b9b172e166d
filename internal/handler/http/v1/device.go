package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a device
// @Description Register a device or refresh its delivery token. The first active device of a user becomes primary. Requires API key.
// @Tags Devices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param device body RegisterDeviceRequest true "Device registration"
// @Success 200 {object} DeviceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /devices [post]
func (h *Handler) registerDevice(c *gin.Context) {
	var input RegisterDeviceRequest
	log := h.logger.WithField("method", "registerDevice")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	entry, err := h.deviceService.RegisterDevice(c.Request.Context(), input.UserID, input.DeviceID, input.DeliveryAddress)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDeviceResponse(entry))
}

// @Summary Set primary device
// @Description Make an active device the user's primary device. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param deviceId path string true "Device ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/devices/{deviceId}/primary [put]
func (h *Handler) setPrimaryDevice(c *gin.Context) {
	userID, deviceID := c.Param("userId"), c.Param("deviceId")
	log := h.logger.WithField("method", "setPrimaryDevice").WithField("user_id", userID).WithField("device_id", deviceID)

	if err := h.deviceService.SetPrimary(c.Request.Context(), userID, deviceID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate a device
// @Description Soft-delete a device on logout. If it was primary, the most recently active remaining device is promoted. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param deviceId path string true "Device ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/devices/{deviceId} [delete]
func (h *Handler) deactivateDevice(c *gin.Context) {
	userID, deviceID := c.Param("userId"), c.Param("deviceId")
	log := h.logger.WithField("method", "deactivateDevice").WithField("user_id", userID).WithField("device_id", deviceID)

	if err := h.deviceService.DeactivateDevice(c.Request.Context(), userID, deviceID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List active devices
// @Description List the user's active devices, most recently active first. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {array} DeviceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/devices [get]
func (h *Handler) listDevices(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "listDevices").WithField("user_id", userID)

	devices, err := h.deviceService.GetActiveDevices(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDeviceResponses(devices))
}

// @Summary Get primary device
// @Description Get the user's primary device. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {object} DeviceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active devices"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/devices/primary [get]
func (h *Handler) getPrimaryDevice(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "getPrimaryDevice").WithField("user_id", userID)

	primary, err := h.deviceService.GetPrimary(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if primary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active devices"})
		return
	}
	c.JSON(http.StatusOK, ModelToDeviceResponse(primary))
}
