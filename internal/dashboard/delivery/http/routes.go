package http

import (
	"agenda-bff/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RateLimit())

	api.GET("/dashboard", h.Summary)
}
