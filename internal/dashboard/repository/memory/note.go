package memory

import (
	"context"
	"slices"

	"student-dashboard/internal/dashboard/repository"
	"student-dashboard/internal/model"
)

func (r *implRepository) ListNotes(ctx context.Context) []model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.notes)
}

func (r *implRepository) GetNote(ctx context.Context, id string) (model.Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

func (r *implRepository) BeginNoteSummary(ctx context.Context, id string) (repository.BeginNoteSummaryResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, note, ok := replaceWhere(r.notes,
		func(n model.Note) bool { return n.ID == id },
		func(n model.Note) model.Note {
			n.Summary = model.SummaryPlaceholder
			return n
		},
	)
	if !ok {
		return repository.BeginNoteSummaryResult{}, false
	}
	r.notes = next
	r.summarySeq[id]++

	return repository.BeginNoteSummaryResult{
		Sequence: r.summarySeq[id],
		Content:  note.Content,
	}, true
}

func (r *implRepository) CompleteNoteSummary(ctx context.Context, opt repository.CompleteNoteSummaryOptions) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.summarySeq[opt.ID] != opt.Sequence {
		return false
	}

	next, _, ok := replaceWhere(r.notes,
		func(n model.Note) bool { return n.ID == opt.ID },
		func(n model.Note) model.Note {
			n.Summary = opt.Summary
			return n
		},
	)
	if !ok {
		return false
	}
	r.notes = next
	return true
}
