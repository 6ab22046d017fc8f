package dashboard

import (
	"context"

	"student-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Tasks
	ListTasks(ctx context.Context, input ListTasksInput) ListTasksOutput
	ToggleTaskCompletion(ctx context.Context, id string) (model.Task, error)

	// Read-only collections
	ListAttendance(ctx context.Context) []AttendanceSummary
	ListExams(ctx context.Context) []model.Exam
	ListInternships(ctx context.Context, input ListInternshipsInput) []model.Internship
	Links(ctx context.Context) []model.ExternalLink

	// Notes
	ListNotes(ctx context.Context) []model.Note
	GetNote(ctx context.Context, id string) (model.Note, error)
	RequestNoteSummary(ctx context.Context, id string) (SummaryTicket, error)

	// Advice
	GetAdvice(ctx context.Context) AdviceOutput
	RefreshAdvice(ctx context.Context) AdviceTicket

	// Views
	GetView(ctx context.Context, view model.ViewType) (View, error)
	CurrentView(ctx context.Context) model.ViewType
	SelectView(ctx context.Context, view string) (model.ViewType, error)

	// Drain waits for in-flight background requests or ctx expiry.
	Drain(ctx context.Context) error
}
