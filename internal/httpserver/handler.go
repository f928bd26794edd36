package httpserver

import (
	"context"
	"fmt"

	"agenda-bff/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")
	if err := srv.setupListingDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup listing domain: %w", err)
	}
	if err := srv.setupDashboardDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup dashboard domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if len(srv.config.CORS.AllowedOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: %s (any origin)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (%d allowed origins)", srv.environment, len(srv.config.CORS.AllowedOrigins))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.registry != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	} else {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
