package middleware

import (
	"student-dashboard/pkg/log"
	"student-dashboard/pkg/metrics"
)

// Config holds the tunables for the middleware set.
type Config struct {
	// RateLimitPerMin is the per-client budget on rate limited routes. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	limiter *rateLimiter
}

// New builds the middleware set. m may be nil.
func New(l log.Logger, m *metrics.Metrics, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
