package repository

import (
	"context"

	"student-dashboard/internal/model"
)

// Repository is the composed interface for the dashboard state store.
// Every method is total: lookups report absence with a bool instead of an error.
type Repository interface {
	TaskRepository
	NoteRepository
	CatalogRepository
	AdviceRepository
	ViewRepository
}

// TaskRepository holds the task collection.
type TaskRepository interface {
	ListTasks(ctx context.Context) []model.Task
	ToggleTask(ctx context.Context, id string) (model.Task, bool)
}

// NoteRepository holds notes and the summary request sequence per note.
type NoteRepository interface {
	ListNotes(ctx context.Context) []model.Note
	GetNote(ctx context.Context, id string) (model.Note, bool)
	// BeginNoteSummary sets the placeholder and issues the next sequence number for the note.
	BeginNoteSummary(ctx context.Context, id string) (BeginNoteSummaryResult, bool)
	// CompleteNoteSummary stores the summary only if opt.Sequence is the latest issued.
	CompleteNoteSummary(ctx context.Context, opt CompleteNoteSummaryOptions) bool
}

// CatalogRepository holds the read-only collections.
type CatalogRepository interface {
	ListAttendance(ctx context.Context) []model.AttendanceRecord
	ListExams(ctx context.Context) []model.Exam
	ListInternships(ctx context.Context) []model.Internship
	ListLinks(ctx context.Context) []model.ExternalLink
}

// AdviceRepository holds the latest advice text.
type AdviceRepository interface {
	GetAdvice(ctx context.Context) (string, bool)
	BeginAdvice(ctx context.Context) uint64
	CompleteAdvice(ctx context.Context, opt CompleteAdviceOptions) bool
}

// ViewRepository holds the selected view.
type ViewRepository interface {
	CurrentView(ctx context.Context) model.ViewType
	SetView(ctx context.Context, view model.ViewType)
}
