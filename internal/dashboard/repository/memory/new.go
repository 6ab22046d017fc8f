package memory

import (
	"slices"
	"sync"

	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/dashboard/repository"
	"student-dashboard/internal/model"
	pkgLog "student-dashboard/pkg/log"
)

// implRepository keeps every collection in memory. Updates never modify a
// published slice: they build a replacement and swap it in under the lock.
type implRepository struct {
	l  pkgLog.Logger
	mu sync.RWMutex

	tasks       []model.Task
	attendance  []model.AttendanceRecord
	exams       []model.Exam
	internships []model.Internship
	notes       []model.Note
	links       []model.ExternalLink

	summarySeq map[string]uint64
	adviceSeq  uint64
	advice     string
	hasAdvice  bool
	view       model.ViewType
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory repository seeded with a copy of seed.
func New(l pkgLog.Logger, seed dashboard.State) repository.Repository {
	return &implRepository{
		l:           l,
		tasks:       slices.Clone(seed.Tasks),
		attendance:  slices.Clone(seed.Attendance),
		exams:       slices.Clone(seed.Exams),
		internships: slices.Clone(seed.Internships),
		notes:       slices.Clone(seed.Notes),
		links:       slices.Clone(seed.Links),
		summarySeq:  make(map[string]uint64),
		view:        model.ViewDashboard,
	}
}

// replaceWhere maps items into a new slice, applying update to the first match.
func replaceWhere[T any](items []T, match func(T) bool, update func(T) T) ([]T, T, bool) {
	var (
		updated T
		found   bool
	)
	out := make([]T, len(items))
	for i, item := range items {
		if !found && match(item) {
			item = update(item)
			updated, found = item, true
		}
		out[i] = item
	}
	return out, updated, found
}
