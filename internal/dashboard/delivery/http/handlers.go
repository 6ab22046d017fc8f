package http

import (
	"github.com/gin-gonic/gin"

	"student-dashboard/internal/model"
	"student-dashboard/pkg/response"
)

// GetView godoc
// @Summary     Render a view
// @Description Returns the render model for one screen: dashboard, assignments, attendance, exams, internships or notes.
// @Tags        Views
// @Produce     json
// @Param       view path string true "View identifier"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Invalid view"
// @Router      /api/v1/views/{view} [GET]
func (h *handler) GetView(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := model.ParseViewType(c.Param("view"))
	if err != nil {
		response.HTTPError(c, errInvalidView)
		return
	}

	output, err := h.uc.GetView(ctx, view)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetView: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewResp(output))
}

// CurrentView godoc
// @Summary     Get the selected view
// @Tags        Views
// @Produce     json
// @Success     200 {object} currentViewResp
// @Router      /api/v1/view [GET]
func (h *handler) CurrentView(c *gin.Context) {
	response.OK(c, h.newCurrentViewResp(h.uc.CurrentView(c.Request.Context())))
}

// SelectView godoc
// @Summary     Select a view
// @Description Changes the selected view. Unknown identifiers are rejected and the selection is kept.
// @Tags        Views
// @Accept      json
// @Produce     json
// @Param       body body selectViewReq true "View to select"
// @Success     200 {object} currentViewResp
// @Failure     400 {object} response.Resp "Invalid view"
// @Router      /api/v1/view [PUT]
func (h *handler) SelectView(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectViewReq(c)
	if err != nil {
		response.HTTPError(c, err)
		return
	}

	view, err := h.uc.SelectView(ctx, req.View)
	if err != nil {
		h.l.Warnf(ctx, "uc.SelectView: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCurrentViewResp(view))
}

// ListTasks godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "pending or completed"
// @Param       course query string false "Course name"
// @Param       priority query string false "low, medium or high"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.HTTPError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(h.uc.ListTasks(ctx, req.toInput())))
}

// ToggleTask godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.ToggleTaskCompletion(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleTaskCompletion: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// ListAttendance godoc
// @Summary     List attendance
// @Description Attendance per course with the rounded percentage and at-risk flag.
// @Tags        Catalog
// @Produce     json
// @Success     200 {array} attendanceResp
// @Router      /api/v1/attendance [GET]
func (h *handler) ListAttendance(c *gin.Context) {
	response.OK(c, newAttendanceResps(h.uc.ListAttendance(c.Request.Context())))
}

// ListExams godoc
// @Summary     List exams
// @Tags        Catalog
// @Produce     json
// @Success     200 {array} examResp
// @Router      /api/v1/exams [GET]
func (h *handler) ListExams(c *gin.Context) {
	response.OK(c, newExamResps(h.uc.ListExams(c.Request.Context())))
}

// ListInternships godoc
// @Summary     List internship applications
// @Tags        Catalog
// @Produce     json
// @Param       status query string false "applied, interview, offer or rejected"
// @Success     200 {array} internshipResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/internships [GET]
func (h *handler) ListInternships(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListInternshipsReq(c)
	if err != nil {
		response.HTTPError(c, err)
		return
	}

	response.OK(c, newInternshipResps(h.uc.ListInternships(ctx, req.toInput())))
}

// ListLinks godoc
// @Summary     List quick links
// @Tags        Catalog
// @Produce     json
// @Success     200 {array} linkResp
// @Router      /api/v1/links [GET]
func (h *handler) ListLinks(c *gin.Context) {
	response.OK(c, newLinkResps(h.uc.Links(c.Request.Context())))
}

// ListNotes godoc
// @Summary     List notes
// @Tags        Notes
// @Produce     json
// @Success     200 {array} noteResp
// @Router      /api/v1/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	response.OK(c, newNoteResps(h.uc.ListNotes(c.Request.Context())))
}

// GetNote godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) GetNote(c *gin.Context) {
	ctx := c.Request.Context()

	note, err := h.uc.GetNote(ctx, c.Param("id"))
	if err != nil {
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, newNoteResp(note))
}

// SummarizeNote godoc
// @Summary     Summarize a note
// @Description Starts a summary request. The note shows a placeholder until the latest request resolves.
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Note ID"
// @Success     202 {object} summaryTicketResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/notes/{id}/summary [POST]
func (h *handler) SummarizeNote(c *gin.Context) {
	ctx := c.Request.Context()

	ticket, err := h.uc.RequestNoteSummary(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.RequestNoteSummary: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Accepted(c, h.newSummaryTicketResp(ticket))
}

// GetAdvice godoc
// @Summary     Get productivity advice
// @Tags        Advice
// @Produce     json
// @Success     200 {object} adviceResp
// @Router      /api/v1/advice [GET]
func (h *handler) GetAdvice(c *gin.Context) {
	out := h.uc.GetAdvice(c.Request.Context())
	response.OK(c, adviceResp{Text: out.Text, Ready: out.Ready})
}

// RefreshAdvice godoc
// @Summary     Refresh productivity advice
// @Description Requests new advice from the current tasks and attendance. The previous text is kept until it resolves.
// @Tags        Advice
// @Produce     json
// @Success     202 {object} adviceTicketResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/advice/refresh [POST]
func (h *handler) RefreshAdvice(c *gin.Context) {
	ticket := h.uc.RefreshAdvice(c.Request.Context())
	response.Accepted(c, adviceTicketResp{Sequence: ticket.Sequence})
}
