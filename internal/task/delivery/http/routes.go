package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Rate limiting is applied at the group so system routes stay unthrottled.
// The fixed /stats path is registered before the :id routes on purpose.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.GET("/stats", h.Stats)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.GET("/:id/history", h.History)
	}
}
