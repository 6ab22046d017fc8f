package memory

import (
	"context"
	"slices"

	"student-dashboard/internal/model"
)

func (r *implRepository) ListAttendance(ctx context.Context) []model.AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.attendance)
}

func (r *implRepository) ListExams(ctx context.Context) []model.Exam {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.exams)
}

func (r *implRepository) ListInternships(ctx context.Context) []model.Internship {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.internships)
}

func (r *implRepository) ListLinks(ctx context.Context) []model.ExternalLink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.links)
}
