package http

import (
	"github.com/gin-gonic/gin"

	"student-dashboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Routes that reach the generative text API are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/views/:view", h.GetView)
	rg.GET("/view", h.CurrentView)
	rg.PUT("/view", h.SelectView)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("/:id/toggle", h.ToggleTask)
	}

	rg.GET("/attendance", h.ListAttendance)
	rg.GET("/exams", h.ListExams)
	rg.GET("/internships", h.ListInternships)
	rg.GET("/links", h.ListLinks)

	notes := rg.Group("/notes")
	{
		notes.GET("", h.ListNotes)
		notes.GET("/:id", h.GetNote)
		notes.POST("/:id/summary", mw.RateLimit(), h.SummarizeNote)
	}

	advice := rg.Group("/advice")
	{
		advice.GET("", h.GetAdvice)
		advice.POST("/refresh", mw.RateLimit(), h.RefreshAdvice)
	}
}
