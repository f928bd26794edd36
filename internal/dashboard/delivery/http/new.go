package http

import (
	"agenda-bff/internal/dashboard"
	"agenda-bff/internal/middleware"
	"agenda-bff/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho dashboard HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New - Factory
func New(l log.Logger, uc dashboard.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
