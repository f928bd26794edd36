package http

import (
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/internal/middleware"
	"agenda-bff/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho listing HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        listing.UseCase
	keepAlive time.Duration
}

// New - Factory
func New(l log.Logger, uc listing.UseCase) Handler {
	return &handler{l: l, uc: uc, keepAlive: defaultKeepAlive}
}
