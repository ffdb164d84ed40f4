package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The table
// carries a unique constraint on (user_id, date) so two near-simultaneous
// check-ins cannot both insert; the second surfaces as ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	// Create inserts a new checked-in record for the day.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a calendar day.
	// Returns nil (no error) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// Update persists the checkout mutation.
	Update(ctx context.Context, att Attendance) error

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByUser retrieves one user's records with filters and pagination.
	ListByUser(ctx context.Context, userID string, filter AttendanceFilter) ([]Attendance, int64, error)
}
