package repository

import (
	"context"

	"agenda-bff/internal/dashboard"
)

type CacheRepository interface {
	// GetSummary returns ErrCacheMiss when nothing is cached.
	GetSummary(ctx context.Context) (dashboard.Summary, error)
	SaveSummary(ctx context.Context, s dashboard.Summary) error
}
