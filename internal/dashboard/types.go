package dashboard

import (
	"student-dashboard/internal/advisor"
	"student-dashboard/internal/model"
)

// AdviceLoadingText is shown until the first advice request resolves.
const AdviceLoadingText = "Loading AI insights..."

// UpcomingTaskLimit caps the incomplete tasks shown on the dashboard.
const UpcomingTaskLimit = 3

// State is the full set of collections a store is seeded with.
type State struct {
	Tasks       []model.Task
	Attendance  []model.AttendanceRecord
	Exams       []model.Exam
	Internships []model.Internship
	Notes       []model.Note
	Links       []model.ExternalLink
}

// --- UseCase Inputs ---

// TaskFilter narrows ListTasks by completion.
type TaskFilter string

const (
	TaskFilterAll       TaskFilter = ""
	TaskFilterPending   TaskFilter = "pending"
	TaskFilterCompleted TaskFilter = "completed"
)

type ListTasksInput struct {
	Filter   TaskFilter
	Course   string
	Priority model.Priority
}

type ListInternshipsInput struct {
	Status model.InternshipStatus
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks     []model.Task
	Total     int
	Completed int
}

// AttendanceSummary is an attendance record with its derived figures.
type AttendanceSummary struct {
	Record     model.AttendanceRecord
	Percentage int
	AtRisk     bool
}

// AdviceOutput is the current advice text. Ready is false until a request has resolved.
type AdviceOutput struct {
	Text  string
	Ready bool
}

// SummaryOutcome reports how a summary request ended.
type SummaryOutcome struct {
	Result advisor.Result
	// Applied is false when a newer request for the same note had been issued.
	Applied bool
}

// SummaryTicket identifies an accepted summary request.
type SummaryTicket struct {
	NoteID   string
	Sequence uint64
	// Done receives exactly one outcome and is then closed.
	Done <-chan SummaryOutcome
}

// AdviceOutcome reports how an advice request ended.
type AdviceOutcome struct {
	Result  advisor.Result
	Applied bool
}

// AdviceTicket identifies an accepted advice refresh.
type AdviceTicket struct {
	Sequence uint64
	Done     <-chan AdviceOutcome
}

// View is the render model for one screen. Only the fields of Type are set.
type View struct {
	Type        model.ViewType
	Dashboard   *DashboardView
	Assignments []model.Task
	Attendance  []AttendanceSummary
	Exams       []model.Exam
	Internships []model.Internship
	Notes       []model.Note
}

// DashboardView is the landing screen.
type DashboardView struct {
	Advice         string
	AdviceReady    bool
	UpcomingTasks  []model.Task
	PendingTasks   int
	CompletedTasks int
	Attendance     []AttendanceSummary
	AtRiskCourses  int
	Exams          []model.Exam
	Links          []model.ExternalLink
}
