package http

import (
	"student-dashboard/internal/dashboard"
	"student-dashboard/internal/model"
	"student-dashboard/pkg/response"
)

// --- Request DTOs ---

type listTasksReq struct {
	Filter   string `form:"filter"`
	Course   string `form:"course"`
	Priority string `form:"priority"`
}

func (r listTasksReq) validate() error {
	switch dashboard.TaskFilter(r.Filter) {
	case dashboard.TaskFilterAll, dashboard.TaskFilterPending, dashboard.TaskFilterCompleted:
	default:
		return errInvalidParam
	}
	if r.Priority != "" {
		if _, err := model.ParsePriority(r.Priority); err != nil {
			return errInvalidParam
		}
	}
	return nil
}

func (r listTasksReq) toInput() dashboard.ListTasksInput {
	return dashboard.ListTasksInput{
		Filter:   dashboard.TaskFilter(r.Filter),
		Course:   r.Course,
		Priority: model.Priority(r.Priority),
	}
}

// ---

type listInternshipsReq struct {
	Status string `form:"status"`
}

func (r listInternshipsReq) validate() error {
	if r.Status == "" {
		return nil
	}
	if _, err := model.ParseInternshipStatus(r.Status); err != nil {
		return errInvalidParam
	}
	return nil
}

func (r listInternshipsReq) toInput() dashboard.ListInternshipsInput {
	return dashboard.ListInternshipsInput{Status: model.InternshipStatus(r.Status)}
}

// ---

type selectViewReq struct {
	View string `json:"view" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	DueDate   response.Date `json:"due_date" swaggertype:"string" format:"date"`
	Course    string        `json:"course"`
	Priority  string        `json:"priority"`
	Completed bool          `json:"completed"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		DueDate:   response.Date(t.DueDate.Time),
		Course:    t.Course,
		Priority:  string(t.Priority),
		Completed: t.Completed,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listTasksResp struct {
	Tasks     []taskResp `json:"tasks"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
}

func (h *handler) newListTasksResp(out dashboard.ListTasksOutput) listTasksResp {
	return listTasksResp{
		Tasks:     newTaskResps(out.Tasks),
		Total:     out.Total,
		Completed: out.Completed,
	}
}

type attendanceResp struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Attended   int    `json:"attended"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	AtRisk     bool   `json:"at_risk"`
}

func newAttendanceResps(items []dashboard.AttendanceSummary) []attendanceResp {
	out := make([]attendanceResp, len(items))
	for i, a := range items {
		out[i] = attendanceResp{
			CourseID:   a.Record.CourseID,
			CourseName: a.Record.CourseName,
			Attended:   a.Record.Attended,
			Total:      a.Record.Total,
			Percentage: a.Percentage,
			AtRisk:     a.AtRisk,
		}
	}
	return out
}

type examResp struct {
	ID       string        `json:"id"`
	Course   string        `json:"course"`
	Date     response.Date `json:"date" swaggertype:"string" format:"date"`
	Location string        `json:"location"`
}

func newExamResps(exams []model.Exam) []examResp {
	out := make([]examResp, len(exams))
	for i, e := range exams {
		out[i] = examResp{ID: e.ID, Course: e.Course, Date: response.Date(e.Date.Time), Location: e.Location}
	}
	return out
}

type internshipResp struct {
	ID          string        `json:"id"`
	Company     string        `json:"company"`
	Role        string        `json:"role"`
	Status      string        `json:"status"`
	DateApplied response.Date `json:"date_applied" swaggertype:"string" format:"date"`
}

func newInternshipResps(items []model.Internship) []internshipResp {
	out := make([]internshipResp, len(items))
	for i, in := range items {
		out[i] = internshipResp{
			ID:          in.ID,
			Company:     in.Company,
			Role:        in.Role,
			Status:      string(in.Status),
			DateApplied: response.Date(in.DateApplied.Time),
		}
	}
	return out
}

type noteResp struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Summary     string        `json:"summary,omitempty"`
	Summarizing bool          `json:"summarizing"`
	Date        response.Date `json:"date" swaggertype:"string" format:"date"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Summary:     n.Summary,
		Summarizing: n.Summarizing(),
		Date:        response.Date(n.Date.Time),
	}
}

func newNoteResps(notes []model.Note) []noteResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return out
}

type linkResp struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

func newLinkResps(links []model.ExternalLink) []linkResp {
	out := make([]linkResp, len(links))
	for i, l := range links {
		out[i] = linkResp{Name: l.Name, URL: l.URL, Icon: l.Icon}
	}
	return out
}

type adviceResp struct {
	Text  string `json:"text"`
	Ready bool   `json:"ready"`
}

type summaryTicketResp struct {
	NoteID   string `json:"note_id"`
	Sequence uint64 `json:"sequence"`
	Summary  string `json:"summary"`
}

func (h *handler) newSummaryTicketResp(t dashboard.SummaryTicket) summaryTicketResp {
	return summaryTicketResp{
		NoteID:   t.NoteID,
		Sequence: t.Sequence,
		Summary:  model.SummaryPlaceholder,
	}
}

type adviceTicketResp struct {
	Sequence uint64 `json:"sequence"`
}

type currentViewResp struct {
	View  string   `json:"view"`
	Views []string `json:"views"`
}

func (h *handler) newCurrentViewResp(v model.ViewType) currentViewResp {
	views := make([]string, len(model.AllViews))
	for i, av := range model.AllViews {
		views[i] = string(av)
	}
	return currentViewResp{View: string(v), Views: views}
}

type dashboardResp struct {
	Advice         string           `json:"advice"`
	AdviceReady    bool             `json:"advice_ready"`
	UpcomingTasks  []taskResp       `json:"upcoming_tasks"`
	PendingTasks   int              `json:"pending_tasks"`
	CompletedTasks int              `json:"completed_tasks"`
	Attendance     []attendanceResp `json:"attendance"`
	AtRiskCourses  int              `json:"at_risk_courses"`
	Exams          []examResp       `json:"exams"`
	Links          []linkResp       `json:"links"`
}

// viewResp carries the render model of one screen; Data's shape depends on View.
type viewResp struct {
	View string `json:"view"`
	Data any    `json:"data"`
}

func (h *handler) newViewResp(v dashboard.View) viewResp {
	resp := viewResp{View: string(v.Type)}

	switch v.Type {
	case model.ViewDashboard:
		d := v.Dashboard
		resp.Data = dashboardResp{
			Advice:         d.Advice,
			AdviceReady:    d.AdviceReady,
			UpcomingTasks:  newTaskResps(d.UpcomingTasks),
			PendingTasks:   d.PendingTasks,
			CompletedTasks: d.CompletedTasks,
			Attendance:     newAttendanceResps(d.Attendance),
			AtRiskCourses:  d.AtRiskCourses,
			Exams:          newExamResps(d.Exams),
			Links:          newLinkResps(d.Links),
		}
	case model.ViewAssignments:
		resp.Data = newTaskResps(v.Assignments)
	case model.ViewAttendance:
		resp.Data = newAttendanceResps(v.Attendance)
	case model.ViewExams:
		resp.Data = newExamResps(v.Exams)
	case model.ViewInternships:
		resp.Data = newInternshipResps(v.Internships)
	case model.ViewNotes:
		resp.Data = newNoteResps(v.Notes)
	}

	return resp
}
