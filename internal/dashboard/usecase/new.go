package usecase

import (
	"sync"

	"student-dashboard/internal/advisor"
	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository"
	pkgLog "student-dashboard/pkg/log"
	"student-dashboard/pkg/metrics"
)

// implUseCase is the private implementation of dashboard.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	advisor  advisor.UseCase
	metrics  *metrics.Metrics
	inflight sync.WaitGroup
}

// New creates a new dashboard UseCase implementation. metrics may be nil.
func New(l pkgLog.Logger, repo repository.Repository, adv advisor.UseCase, m *metrics.Metrics) dashboard.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		advisor: adv,
		metrics: m,
	}
}
