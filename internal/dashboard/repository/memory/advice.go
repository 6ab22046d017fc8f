package memory

import (
	"context"

	"student-dashboard/internal/dashboard/repository"
)

func (r *implRepository) GetAdvice(ctx context.Context) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.advice, r.hasAdvice
}

func (r *implRepository) BeginAdvice(ctx context.Context) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adviceSeq++
	return r.adviceSeq
}

func (r *implRepository) CompleteAdvice(ctx context.Context, opt repository.CompleteAdviceOptions) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if opt.Sequence != r.adviceSeq {
		return false
	}
	r.advice = opt.Text
	r.hasAdvice = true
	return true
}
