package http

import (
	"github.com/gin-gonic/gin"

	"voice-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route needs the caller scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Scope(), mw.RateLimit())
	{
		events.POST("/interpret", h.Interpret)
		events.GET("/export", h.Export)
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
