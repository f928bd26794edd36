package agendasrv

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/agendasrv.go -package=mocks

// IAgenda defines the interface for the agenda backend API client.
// Implementations are safe for concurrent use.
type IAgenda interface {
	// List fetches one page from a collection path and returns the raw body.
	// The envelope is not uniform across backends so decoding is left to the caller.
	List(ctx context.Context, path string, q ListQuery) ([]byte, error)
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
	GetDashboardActivity(ctx context.Context) (*DashboardActivity, error)
}

// New creates a new agenda backend client. Returns the interface.
func New(cfg AgendaConfig) IAgenda {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &agendaImpl{
		httpClient: cfg.HTTPClient,
	}
}
