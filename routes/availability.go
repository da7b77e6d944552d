package routes

import (
	"github.com/gin-gonic/gin"

	"sudsy/handlers"
)

// RegisterAvailabilityRoutes registers provider schedule management and the
// public slots query.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	provider := r.Group("/api/providers/:providerID")
	{
		provider.GET("/availability/rules", h.ListRules)
		provider.POST("/availability/rules", h.CreateRule)
		provider.PUT("/availability/rules/:ruleID", h.UpdateRule)
		provider.DELETE("/availability/rules/:ruleID", h.DeleteRule)
		provider.POST("/availability/default", h.SetDefaultAvailability)

		provider.GET("/blocked-times", h.ListBlocks)
		provider.POST("/blocked-times", h.CreateBlock)
		provider.DELETE("/blocked-times/:blockID", h.DeleteBlock)

		provider.GET("/slots", h.GetSlots)
	}
}
