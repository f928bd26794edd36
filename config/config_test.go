package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Agenda.BaseURL)
	assert.Equal(t, 5, cfg.Agenda.Timeout)
	assert.Equal(t, 6, cfg.Listing.PageSize)
	assert.Equal(t, 5, cfg.Listing.WindowSize)
	assert.Equal(t, 500, cfg.Listing.DebounceMS)
	assert.Equal(t, 900, cfg.Listing.SessionTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "500ms", cfg.Listing.Debounce().String())
	assert.Equal(t, "5s", cfg.Agenda.TimeoutDuration().String())
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("AGENDA_BASE_URL", "http://backend:9000")
	t.Setenv("LISTING_PAGE_SIZE", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.Agenda.BaseURL)
	assert.Equal(t, 10, cfg.Listing.PageSize)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080, Mode: "release"},
			Agenda:     AgendaConfig{BaseURL: "http://localhost:8000", Timeout: 5},
			Listing:    ListingConfig{PageSize: 6, WindowSize: 5, DebounceMS: 500, SessionTTL: 60, MaxSessions: 10},
			RateLimit:  RateLimitConfig{CacheSize: 10, CacheTTL: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad base url", mutate: func(c *Config) { c.Agenda.BaseURL = "not a url" }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Listing.PageSize = 0 }, wantErr: true},
		{name: "bad mode", mutate: func(c *Config) { c.HTTPServer.Mode = "verbose" }, wantErr: true},
		{name: "redis enabled without host", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Port = 6379 }, wantErr: true},
		{name: "redis enabled", mutate: func(c *Config) { c.Redis = RedisConfig{Enabled: true, Host: "r", Port: 6379} }},
		{name: "rate limit without rps", mutate: func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.Burst = 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
