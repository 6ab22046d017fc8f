package memory

import (
	"context"
	"slices"

	"student-dashboard/internal/model"
)

func (r *implRepository) ListTasks(ctx context.Context) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tasks)
}

// ToggleTask flips the completion flag. Unknown ids leave the collection untouched.
func (r *implRepository) ToggleTask(ctx context.Context, id string) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, task, ok := replaceWhere(r.tasks,
		func(t model.Task) bool { return t.ID == id },
		func(t model.Task) model.Task {
			t.Completed = !t.Completed
			return t
		},
	)
	if !ok {
		return model.Task{}, false
	}
	r.tasks = next
	r.l.Debugf(ctx, "memory.ToggleTask: %s completed=%t", id, task.Completed)
	return task, true
}
