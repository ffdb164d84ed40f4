package job

import "time"

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Job struct {
	ID          string
	Title       string
	CompanyName string
	Location    string
	Type        string // full-time, part-time, contract, internship
	SalaryMin   *int64
	SalaryMax   *int64
	Description string
	Deadline    *time.Time
	Status      Status
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	ApplicationCount *int64
}

// IsOpen reports whether the posting still accepts applications.
func (j *Job) IsOpen(now time.Time) bool {
	if j.Status != StatusOpen {
		return false
	}
	if j.Deadline != nil && now.After(*j.Deadline) {
		return false
	}
	return true
}
