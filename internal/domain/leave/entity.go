package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       string // annual, sick, unpaid
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	DecidedBy  *string
	DecidedAt  *time.Time
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName  *string
	EmployeeEmail *string
}

// Days counts the calendar days covered by the request, inclusive.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
