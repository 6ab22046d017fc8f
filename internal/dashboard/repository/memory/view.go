package memory

import (
	"context"

	"student-dashboard/internal/model"
)

func (r *implRepository) CurrentView(ctx context.Context) model.ViewType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

func (r *implRepository) SetView(ctx context.Context, view model.ViewType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
}
