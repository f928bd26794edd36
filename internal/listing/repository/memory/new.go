package memory

import (
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/repository"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type implSessionRepository struct {
	cache   *expirable.LRU[string, listing.Viewer]
	l       log.Logger
	metrics metrics.IMetrics
}

// New - Factory. size bounds open sessions; the least recently used one is closed past it.
func New(size int, ttl time.Duration, l log.Logger, m metrics.IMetrics) repository.SessionRepository {
	if m == nil {
		m = metrics.NewNop()
	}
	r := &implSessionRepository{l: l, metrics: m}
	r.cache = expirable.NewLRU[string, listing.Viewer](size, r.onEvict, ttl)
	return r
}
