package usecase

import (
	"context"

	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/model"
)

// ListTasks returns tasks in stored order, optionally filtered.
func (uc *implUseCase) ListTasks(ctx context.Context, input dashboard.ListTasksInput) dashboard.ListTasksOutput {
	all := uc.repo.ListTasks(ctx)

	out := dashboard.ListTasksOutput{Tasks: make([]model.Task, 0, len(all))}
	for _, t := range all {
		if input.Course != "" && t.Course != input.Course {
			continue
		}
		if input.Priority != "" && t.Priority != input.Priority {
			continue
		}
		switch input.Filter {
		case dashboard.TaskFilterPending:
			if t.Completed {
				continue
			}
		case dashboard.TaskFilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out.Tasks = append(out.Tasks, t)
		if t.Completed {
			out.Completed++
		}
	}
	out.Total = len(out.Tasks)
	return out
}

// ToggleTaskCompletion flips the completion flag.
// For an unknown id the store update is a no-op; ErrTaskNotFound only reports it to the caller.
func (uc *implUseCase) ToggleTaskCompletion(ctx context.Context, id string) (model.Task, error) {
	task, ok := uc.repo.ToggleTask(ctx, id)
	if !ok {
		return model.Task{}, dashboard.ErrTaskNotFound
	}
	return task, nil
}
