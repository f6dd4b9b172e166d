package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. middlewares применяются
// к защищенной группе после проверки API-ключа.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, middlewares ...gin.HandlerFunc) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	protected.Use(middlewares...)

	// Сообщения об авариях и их обработка
	crashes := protected.Group("/crashes")
	{
		crashes.POST("", h.reportCrash)
		crashes.GET("/unprocessed", h.listUnprocessed)
		crashes.GET("/:incidentId", h.getIncident)
		crashes.GET("/:incidentId/stats", h.getStats)
		crashes.GET("/:incidentId/attempts", h.listAttempts)
		// Ручной claim забирает инцидент у очереди: рассылки по нему не будет
		crashes.POST("/:incidentId/claim", h.claimIncident)
		crashes.POST("/:incidentId/complete", h.completeIncident)
	}
	protected.GET("/victims/:userId/crashes", h.listVictimIncidents)

	// Реестр устройств
	protected.POST("/devices", h.registerDevice)
	users := protected.Group("/users/:userId/devices")
	{
		users.GET("", h.listDevices)
		users.GET("/primary", h.getPrimaryDevice)
		users.PUT("/:deviceId/primary", h.setPrimaryDevice)
		users.DELETE("/:deviceId", h.deactivateDevice)
	}

	// Открытые алерты
	alerts := protected.Group("/alerts")
	{
		alerts.POST("/retract", h.retractAlerts)
		alerts.GET("/:scopeKey", h.listOpenAlerts)
	}
}
