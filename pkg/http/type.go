package http

import (
	"net/http"
	"net/url"
	"time"

	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	Logger    log.Logger
	Metrics   metrics.IMetrics
}

// Request describes one call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// clientImpl implements IClient.
type clientImpl struct {
	client  *http.Client
	baseURL string
	config  ClientConfig
}
