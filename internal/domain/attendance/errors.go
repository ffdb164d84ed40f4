package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAlreadyCheckedIn      = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out today")
	ErrNotCheckedIn          = errors.New("no check-in found for today")
	ErrNoLocationsConfigured = errors.New("no allowed locations are configured")
	ErrLocationUnavailable   = errors.New("device location is unavailable")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
)

// OutOfRangeError is returned when the user is outside every allowed location's
// radius. It carries the exact values used in the check so clients can show the
// remaining meter deficit; no rounding happens before the response boundary.
type OutOfRangeError struct {
	LocationName   string
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are %.0f m from %s, which allows %.0f m",
		e.DistanceMeters, e.LocationName, e.RadiusMeters)
}

// Deficit is how many meters the user must close to be in range.
func (e *OutOfRangeError) Deficit() float64 {
	return e.DistanceMeters - e.RadiusMeters
}

// TimeWindowError is returned when the action is attempted outside the
// permitted hour range.
type TimeWindowError struct {
	Action    Action
	StartHour int
	EndHour   int // -1 means the window has no upper bound
}

func (e *TimeWindowError) Error() string {
	if e.EndHour < 0 {
		return fmt.Sprintf("%s is only allowed from %02d:00", e.Action, e.StartHour)
	}
	return fmt.Sprintf("%s is only allowed between %02d:00 and %02d:00", e.Action, e.StartHour, e.EndHour)
}
