package usecase

import (
	"context"
	"fmt"
	"slices"

	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/model"
)

func (uc *implUseCase) ListAttendance(ctx context.Context) []dashboard.AttendanceSummary {
	return summarizeAttendance(uc.repo.ListAttendance(ctx))
}

func (uc *implUseCase) ListExams(ctx context.Context) []model.Exam {
	return uc.repo.ListExams(ctx)
}

func (uc *implUseCase) ListInternships(ctx context.Context, input dashboard.ListInternshipsInput) []model.Internship {
	all := uc.repo.ListInternships(ctx)
	if input.Status == "" {
		return all
	}
	return slices.DeleteFunc(all, func(i model.Internship) bool { return i.Status != input.Status })
}

func (uc *implUseCase) Links(ctx context.Context) []model.ExternalLink {
	return uc.repo.ListLinks(ctx)
}

func (uc *implUseCase) CurrentView(ctx context.Context) model.ViewType {
	return uc.repo.CurrentView(ctx)
}

func (uc *implUseCase) SelectView(ctx context.Context, view string) (model.ViewType, error) {
	v, err := model.ParseViewType(view)
	if err != nil {
		return "", fmt.Errorf("%w: %q", dashboard.ErrInvalidView, view)
	}
	uc.repo.SetView(ctx, v)
	return v, nil
}

// GetView builds the render model for one screen from the current state.
func (uc *implUseCase) GetView(ctx context.Context, view model.ViewType) (dashboard.View, error) {
	out := dashboard.View{Type: view}

	switch view {
	case model.ViewDashboard:
		out.Dashboard = uc.buildDashboard(ctx)
	case model.ViewAssignments:
		out.Assignments = uc.repo.ListTasks(ctx)
	case model.ViewAttendance:
		out.Attendance = uc.ListAttendance(ctx)
	case model.ViewExams:
		out.Exams = uc.repo.ListExams(ctx)
	case model.ViewInternships:
		out.Internships = uc.repo.ListInternships(ctx)
	case model.ViewNotes:
		out.Notes = uc.repo.ListNotes(ctx)
	default:
		return dashboard.View{}, fmt.Errorf("%w: %q", dashboard.ErrInvalidView, view)
	}

	return out, nil
}

func (uc *implUseCase) buildDashboard(ctx context.Context) *dashboard.DashboardView {
	advice := uc.GetAdvice(ctx)
	tasks := uc.repo.ListTasks(ctx)
	attendance := uc.ListAttendance(ctx)

	exams := uc.repo.ListExams(ctx)
	slices.SortStableFunc(exams, func(a, b model.Exam) int { return a.Date.Compare(b.Date.Time) })

	dv := &dashboard.DashboardView{
		Advice:        advice.Text,
		AdviceReady:   advice.Ready,
		UpcomingTasks: make([]model.Task, 0, dashboard.UpcomingTaskLimit),
		Attendance:    attendance,
		Exams:         exams,
		Links:         uc.repo.ListLinks(ctx),
	}

	for _, t := range tasks {
		if t.Completed {
			dv.CompletedTasks++
			continue
		}
		dv.PendingTasks++
		if len(dv.UpcomingTasks) < dashboard.UpcomingTaskLimit {
			dv.UpcomingTasks = append(dv.UpcomingTasks, t)
		}
	}
	for _, a := range attendance {
		if a.AtRisk {
			dv.AtRiskCourses++
		}
	}

	return dv
}

func summarizeAttendance(records []model.AttendanceRecord) []dashboard.AttendanceSummary {
	out := make([]dashboard.AttendanceSummary, len(records))
	for i, r := range records {
		out[i] = dashboard.AttendanceSummary{
			Record:     r,
			Percentage: r.RoundedPercentage(),
			AtRisk:     r.AtRisk(),
		}
	}
	return out
}
