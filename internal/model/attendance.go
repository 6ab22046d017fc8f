package model

import "math"

// AtRiskThreshold is the attendance percentage below which a course is flagged.
const AtRiskThreshold = 75.0

// AttendanceRecord counts attended sessions for one course.
type AttendanceRecord struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Attended   int    `json:"attended"`
	Total      int    `json:"total"`
}

// Percentage is attended/total*100. A course with no sessions yet reports 0.
func (r AttendanceRecord) Percentage() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Attended) / float64(r.Total) * 100
}

// RoundedPercentage is Percentage rounded to the nearest whole number.
func (r AttendanceRecord) RoundedPercentage() int {
	return int(math.Round(r.Percentage()))
}

// AtRisk reports whether attendance is below AtRiskThreshold.
func (r AttendanceRecord) AtRisk() bool {
	return r.Percentage() < AtRiskThreshold
}
