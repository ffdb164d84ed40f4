package application

import "time"

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

type Application struct {
	ID          string
	JobID       string
	CandidateID string
	ResumePath  string
	CoverLetter *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	JobTitle       *string
	CompanyName    *string
	CandidateName  *string
	CandidateEmail *string
}
