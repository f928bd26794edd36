package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
)

// IClient sends JSON requests to a single backend base URL.
// Non-2xx statuses come back as *RequestError. Implementations are safe for concurrent use.
type IClient interface {
	Do(ctx context.Context, req Request) ([]byte, error)
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNop()
	}
	return &clientImpl{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
	}
}
