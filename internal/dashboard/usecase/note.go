package usecase

import (
	"context"

	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository"
	"student-dashboard/internal/model"
)

func (uc *implUseCase) ListNotes(ctx context.Context) []model.Note {
	return uc.repo.ListNotes(ctx)
}

func (uc *implUseCase) GetNote(ctx context.Context, id string) (model.Note, error) {
	note, ok := uc.repo.GetNote(ctx, id)
	if !ok {
		return model.Note{}, dashboard.ErrNoteNotFound
	}
	return note, nil
}

// RequestNoteSummary marks the note as summarizing and resolves the summary in the background.
// The request outlives ctx cancellation; only the latest request for a note may write its result.
// For an unknown id nothing is stored or requested; ErrNoteNotFound only reports it to the caller.
func (uc *implUseCase) RequestNoteSummary(ctx context.Context, id string) (dashboard.SummaryTicket, error) {
	begin, ok := uc.repo.BeginNoteSummary(ctx, id)
	if !ok {
		return dashboard.SummaryTicket{}, dashboard.ErrNoteNotFound
	}

	done := make(chan dashboard.SummaryOutcome, 1)
	bgCtx := context.WithoutCancel(ctx)

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		defer close(done)

		res := uc.advisor.Summarize(bgCtx, begin.Content)
		applied := uc.repo.CompleteNoteSummary(bgCtx, repository.CompleteNoteSummaryOptions{
			ID:       id,
			Sequence: begin.Sequence,
			Summary:  res.Display(),
		})
		if !applied {
			uc.metrics.IncStaleSummary()
			uc.l.Infof(bgCtx, "usecase.RequestNoteSummary: discarded stale summary for %s (seq %d)", id, begin.Sequence)
		}
		done <- dashboard.SummaryOutcome{Result: res, Applied: applied}
	}()

	return dashboard.SummaryTicket{
		NoteID:   id,
		Sequence: begin.Sequence,
		Done:     done,
	}, nil
}
