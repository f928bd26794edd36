package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Agenda backend - cadastros, agendamentos, dashboard
	Agenda AgendaConfig

	// List controllers and sessions
	Listing ListingConfig

	// Redis - dashboard cache (optional)
	Redis RedisConfig

	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"oneof=debug release test"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string `validate:"omitempty,oneof=console json"`
	ColorEnabled bool
}

// AgendaConfig is the configuration for the agenda REST backend.
type AgendaConfig struct {
	BaseURL   string `validate:"required,url"`
	Timeout   int    `validate:"min=1"` // in seconds
	Retries   int    `validate:"min=0,max=5"`
	RetryWait int    `validate:"min=0"` // in milliseconds
}

// ListingConfig controls list controllers and their sessions.
type ListingConfig struct {
	PageSize    int `validate:"min=1,max=100"`
	WindowSize  int `validate:"min=1"`
	DebounceMS  int `validate:"min=0"`
	SessionTTL  int `validate:"min=1"` // in seconds
	MaxSessions int `validate:"min=1"`
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled    bool
	Host       string `validate:"required_if=Enabled true"`
	Port       int    `validate:"required_if=Enabled true,omitempty,min=1,max=65535"`
	Password   string
	DB         int
	SummaryTTL int `validate:"min=0"` // in seconds
}

// RateLimitConfig is the per-client token bucket applied to the public API.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64 `validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst             int     `validate:"required_if=Enabled true,omitempty,min=1"`
	CacheSize         int     `validate:"min=1"`
	CacheTTL          int     `validate:"min=1"` // in seconds
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// TimeoutDuration returns Timeout as a duration.
func (c AgendaConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// RetryWaitDuration returns RetryWait as a duration.
func (c AgendaConfig) RetryWaitDuration() time.Duration {
	return time.Duration(c.RetryWait) * time.Millisecond
}

// Debounce returns DebounceMS as a duration.
func (c ListingConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// TTL returns SessionTTL as a duration.
func (c ListingConfig) TTL() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("agenda-bff")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/agenda-bff/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Agenda backend
	cfg.Agenda.BaseURL = viper.GetString("agenda.base_url")
	cfg.Agenda.Timeout = viper.GetInt("agenda.timeout")
	cfg.Agenda.Retries = viper.GetInt("agenda.retries")
	cfg.Agenda.RetryWait = viper.GetInt("agenda.retry_wait_ms")

	// Listing
	cfg.Listing.PageSize = viper.GetInt("listing.page_size")
	cfg.Listing.WindowSize = viper.GetInt("listing.window_size")
	cfg.Listing.DebounceMS = viper.GetInt("listing.debounce_ms")
	cfg.Listing.SessionTTL = viper.GetInt("listing.session_ttl")
	cfg.Listing.MaxSessions = viper.GetInt("listing.max_sessions")

	// Redis - dashboard cache
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.SummaryTTL = viper.GetInt("redis.summary_ttl")

	// Rate limit
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.CacheSize = viper.GetInt("rate_limit.cache_size")
	cfg.RateLimit.CacheTTL = viper.GetInt("rate_limit.cache_ttl")

	// CORS
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Agenda backend
	viper.SetDefault("agenda.base_url", "http://localhost:8000")
	viper.SetDefault("agenda.timeout", 5)
	viper.SetDefault("agenda.retries", 1)
	viper.SetDefault("agenda.retry_wait_ms", 500)

	// 2. Listing
	viper.SetDefault("listing.page_size", 6)
	viper.SetDefault("listing.window_size", 5)
	viper.SetDefault("listing.debounce_ms", 500)
	viper.SetDefault("listing.session_ttl", 900) // 15 minutes
	viper.SetDefault("listing.max_sessions", 1000)

	// 3. Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.summary_ttl", 30)

	// 4. Rate limit
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("rate_limit.cache_size", 10000)
	viper.SetDefault("rate_limit.cache_ttl", 600)

	// 5. CORS
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config %s: failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
