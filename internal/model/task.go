package model

import "fmt"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Task is an assignment or piece of coursework.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	DueDate   Date     `json:"due_date"`
	Course    string   `json:"course"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}
