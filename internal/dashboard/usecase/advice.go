package usecase

import (
	"context"

	"student-dashboard/internal/advisor"
	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository"
)

func (uc *implUseCase) GetAdvice(ctx context.Context) dashboard.AdviceOutput {
	text, ok := uc.repo.GetAdvice(ctx)
	if !ok {
		return dashboard.AdviceOutput{Text: dashboard.AdviceLoadingText}
	}
	return dashboard.AdviceOutput{Text: text, Ready: true}
}

// RefreshAdvice snapshots tasks and attendance and requests advice in the background.
func (uc *implUseCase) RefreshAdvice(ctx context.Context) dashboard.AdviceTicket {
	snapshot := advisor.Snapshot{
		Tasks:      uc.repo.ListTasks(ctx),
		Attendance: uc.repo.ListAttendance(ctx),
	}
	seq := uc.repo.BeginAdvice(ctx)

	done := make(chan dashboard.AdviceOutcome, 1)
	bgCtx := context.WithoutCancel(ctx)

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		defer close(done)

		res := uc.advisor.Advise(bgCtx, snapshot)
		applied := uc.repo.CompleteAdvice(bgCtx, repository.CompleteAdviceOptions{
			Sequence: seq,
			Text:     res.Display(),
		})
		if !applied {
			uc.l.Infof(bgCtx, "usecase.RefreshAdvice: discarded stale advice (seq %d)", seq)
		}
		done <- dashboard.AdviceOutcome{Result: res, Applied: applied}
	}()

	return dashboard.AdviceTicket{Sequence: seq, Done: done}
}

// Drain blocks until background requests finish or ctx is done.
func (uc *implUseCase) Drain(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		uc.inflight.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
