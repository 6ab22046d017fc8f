package model

import "fmt"

// ViewType identifies one dashboard screen.
type ViewType string

const (
	ViewDashboard   ViewType = "dashboard"
	ViewAssignments ViewType = "assignments"
	ViewAttendance  ViewType = "attendance"
	ViewExams       ViewType = "exams"
	ViewInternships ViewType = "internships"
	ViewNotes       ViewType = "notes"
)

// AllViews lists the views in sidebar order.
var AllViews = []ViewType{
	ViewDashboard,
	ViewAssignments,
	ViewAttendance,
	ViewExams,
	ViewInternships,
	ViewNotes,
}

// ParseViewType validates a view identifier.
func ParseViewType(s string) (ViewType, error) {
	for _, v := range AllViews {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid view %q", s)
}

// ExternalLink is a quick link shown in the sidebar.
type ExternalLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}
