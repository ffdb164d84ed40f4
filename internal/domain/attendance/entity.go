package attendance

import (
	"time"
)

const (
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
)

// LocationSnapshot is a denormalized copy of the matched allowed location taken
// at marking time. Historical records stay stable even if an admin later edits
// or deletes the location.
type LocationSnapshot struct {
	Name           string
	DistanceMeters float64
}

// Attendance is one record per (user, calendar day). CheckIn is set once at
// creation; CheckOut at most once afterwards. A record that never reaches
// checked-out stays checked-in permanently (missed checkout).
type Attendance struct {
	ID               string
	UserID           string
	Date             time.Time // day granularity
	CheckIn          time.Time
	CheckOut         *time.Time
	CheckInLocation  LocationSnapshot
	CheckOutLocation *LocationSnapshot
	Status           string
	WorkHours        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	UserName *string
}

// MissedCheckout reports whether the record is stuck in checked-in on a past
// UTC day.
func (a *Attendance) MissedCheckout(now time.Time) bool {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return a.CheckOut == nil && a.Date.Before(today)
}
