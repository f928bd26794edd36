package redis

import (
	"time"

	"agenda-bff/internal/dashboard/repository"
	"agenda-bff/pkg/log"
	pkgRedis "agenda-bff/pkg/redis"
)

const summaryKey = "agenda-bff:dashboard:summary"

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
