package main

import (
	"context"
	"fmt"

	"agenda-bff/config"
	configRedis "agenda-bff/config/redis"
	_ "agenda-bff/docs" // Import swagger docs
	"agenda-bff/internal/httpserver"
	"agenda-bff/pkg/agendasrv"
	pkghttp "agenda-bff/pkg/http"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
	pkgRedis "agenda-bff/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title       Agenda BFF API
// @description Paginated, filterable lists of cadastros and agendamentos over the agenda backend.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 4. Initialize agenda backend client
	agenda := agendasrv.New(agendasrv.AgendaConfig{
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			BaseURL:   cfg.Agenda.BaseURL,
			Timeout:   cfg.Agenda.TimeoutDuration(),
			Retries:   cfg.Agenda.Retries,
			RetryWait: cfg.Agenda.RetryWaitDuration(),
			Logger:    logger,
			Metrics:   m,
		}),
	})
	logger.Infof(ctx, "Agenda backend client initialized for %s", cfg.Agenda.BaseURL)

	// 5. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	} else {
		logger.Infof(ctx, "Redis disabled, dashboard summary will not be cached")
	}

	// 6. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Upstream
		Agenda: agenda,

		// Cache Configuration
		Redis: redisClient,

		// Monitoring Configuration
		Registry: registry,
		Metrics:  m,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
