package model

// Exam is a scheduled examination.
type Exam struct {
	ID       string `json:"id"`
	Course   string `json:"course"`
	Date     Date   `json:"date"`
	Location string `json:"location"`
}
