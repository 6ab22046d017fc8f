package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"student-dashboard/internal/advisor"
	"student-dashboard/pkg/gemini"
	pkgLog "student-dashboard/pkg/log"
	"student-dashboard/pkg/metrics"
)

// Config tunes the advice cache. A zero CacheSize disables caching.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l       pkgLog.Logger
	llm     gemini.IGemini
	metrics *metrics.Metrics
	cache   *expirable.LRU[string, string]
	now     func() time.Time
}

// New creates a new advisor UseCase. metrics may be nil.
func New(l pkgLog.Logger, llm gemini.IGemini, m *metrics.Metrics, cfg Config) advisor.UseCase {
	uc := &implUseCase{
		l:       l,
		llm:     llm,
		metrics: m,
		now:     time.Now,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
