package http

import (
	"agenda-bff/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.RateLimit())

	lists := api.Group("/lists")
	{
		lists.GET("", h.ListEntities)
		lists.GET("/:entity", h.Browse)
		lists.GET("/:entity/filters", h.Filters)
		lists.POST("/:entity/sessions", h.OpenSession)
	}

	sessions := api.Group("/sessions")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/page", h.ChangePage)
		sessions.PUT("/:id/filter", h.ChangeFilter)
		sessions.POST("/:id/retry", h.Retry)
		sessions.GET("/:id/events", h.Events)
		sessions.DELETE("/:id", h.CloseSession)
	}
}
