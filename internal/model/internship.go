package model

import "fmt"

// InternshipStatus is where an application stands.
type InternshipStatus string

const (
	InternshipApplied   InternshipStatus = "applied"
	InternshipInterview InternshipStatus = "interview"
	InternshipOffer     InternshipStatus = "offer"
	InternshipRejected  InternshipStatus = "rejected"
)

// ParseInternshipStatus validates a status string.
func ParseInternshipStatus(s string) (InternshipStatus, error) {
	switch st := InternshipStatus(s); st {
	case InternshipApplied, InternshipInterview, InternshipOffer, InternshipRejected:
		return st, nil
	}
	return "", fmt.Errorf("invalid internship status %q", s)
}

// Internship is a tracked application.
type Internship struct {
	ID          string           `json:"id"`
	Company     string           `json:"company"`
	Role        string           `json:"role"`
	Status      InternshipStatus `json:"status"`
	DateApplied Date             `json:"date_applied"`
}
