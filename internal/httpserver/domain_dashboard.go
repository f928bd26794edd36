package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	dashboardHTTP "agenda-bff/internal/dashboard/delivery/http"
	"agenda-bff/internal/dashboard/repository"
	dashboardRedis "agenda-bff/internal/dashboard/repository/redis"
	dashboardUsecase "agenda-bff/internal/dashboard/usecase"
	"agenda-bff/internal/middleware"
)

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var cache repository.CacheRepository
	if srv.redis != nil {
		ttl := time.Duration(srv.config.Redis.SummaryTTL) * time.Second
		cache = dashboardRedis.New(srv.redis, srv.l, ttl)
	}

	uc := dashboardUsecase.New(srv.agenda, cache, srv.l)

	handler := dashboardHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered (cache enabled: %t)", cache != nil)
	return nil
}
