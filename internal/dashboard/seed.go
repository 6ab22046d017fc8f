package dashboard

import "student-dashboard/internal/model"

// SampleState returns the compiled-in sample data the service starts with.
func SampleState() State {
	return State{
		Tasks: []model.Task{
			{ID: "t1", Title: "Problem Set 4", DueDate: model.MustDate("2024-05-20"), Course: "Macroeconomics", Priority: model.PriorityHigh},
			{ID: "t2", Title: "Group Project Draft", DueDate: model.MustDate("2024-05-22"), Course: "Data Science", Priority: model.PriorityMedium},
			{ID: "t3", Title: "Case Study Prep", DueDate: model.MustDate("2024-05-18"), Course: "Corporate Finance", Priority: model.PriorityLow, Completed: true},
		},
		Attendance: []model.AttendanceRecord{
			{CourseID: "1", CourseName: "Macroeconomics", Attended: 12, Total: 15},
			{CourseID: "2", CourseName: "Data Science", Attended: 8, Total: 10},
			{CourseID: "3", CourseName: "Corporate Finance", Attended: 14, Total: 15},
			{CourseID: "4", CourseName: "Business Ethics", Attended: 5, Total: 8},
		},
		Exams: []model.Exam{
			{ID: "e1", Course: "Macroeconomics Final", Date: model.MustDate("2024-06-15"), Location: "Hall A"},
			{ID: "e2", Course: "Data Science Midterm", Date: model.MustDate("2024-05-28"), Location: "Room 302"},
		},
		Internships: []model.Internship{
			{ID: "i1", Company: "Goldman Sachs", Role: "Summer Analyst", Status: model.InternshipInterview, DateApplied: model.MustDate("2024-04-01")},
			{ID: "i2", Company: "Google", Role: "SWE Intern", Status: model.InternshipApplied, DateApplied: model.MustDate("2024-04-10")},
			{ID: "i3", Company: "McKinsey", Role: "Business Analyst", Status: model.InternshipRejected, DateApplied: model.MustDate("2024-03-15")},
		},
		Notes: []model.Note{
			{
				ID:      "n1",
				Title:   "Macro Policy Notes",
				Content: "Inflation is a general increase in prices and fall in the purchasing value of money. Central banks use interest rates to control inflation.",
				Date:    model.MustDate("2024-05-15"),
			},
		},
		Links: []model.ExternalLink{
			{Name: "WhatsApp", URL: "https://web.whatsapp.com/", Icon: "💬"},
			{Name: "Outlook", URL: "https://outlook.live.com/mail/", Icon: "📧"},
			{Name: "Bocconi Portal", URL: "https://idp.unibocconi.it/idp/profile/SAML2/POST/SSO?execution=e1s1", Icon: "🎓"},
		},
	}
}
