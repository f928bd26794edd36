package middleware

import (
	"agenda-bff/config"
	"agenda-bff/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *RateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	m := Middleware{
		l:      l,
		config: cfg,
	}
	// shared by every route group using RateLimit
	if cfg != nil && cfg.RateLimit.Enabled {
		m.limiter = NewRateLimiter(cfg.RateLimit)
	}
	return m
}
