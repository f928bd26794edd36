package httpserver

import (
	"errors"

	"agenda-bff/config"
	"agenda-bff/internal/listing/repository"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
	pkgRedis "agenda-bff/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Upstream
	agenda agendasrv.IAgenda

	// Cache (optional)
	redis pkgRedis.IRedis

	// Monitoring
	registry *prometheus.Registry
	metrics  metrics.IMetrics

	// Set while mapping handlers
	sessions repository.SessionRepository
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Upstream
	Agenda agendasrv.IAgenda

	// Cache Configuration (nil disables the dashboard cache)
	Redis pkgRedis.IRedis

	// Monitoring Configuration
	Registry *prometheus.Registry
	Metrics  metrics.IMetrics
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	m := cfg.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Upstream
		agenda: cfg.Agenda,

		// Cache
		redis: cfg.Redis,

		// Monitoring
		registry: cfg.Registry,
		metrics:  m,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Upstream
	if srv.agenda == nil {
		return errors.New("agenda client is required")
	}

	// Redis and the registry are optional

	return nil
}
