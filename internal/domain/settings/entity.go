package settings

import "time"

// TimeSettings are the admin-configured attendance hour windows.
// Check-in is allowed in [CheckInStartHour, CheckInEndHour); check-out opens at
// CheckOutStartHour and has no upper bound before the midnight rollover.
type TimeSettings struct {
	CheckInStartHour  int
	CheckInEndHour    int
	CheckOutStartHour int
	UpdatedAt         time.Time
}

// Defaults returns the settings used until an admin configures them.
func Defaults() TimeSettings {
	return TimeSettings{
		CheckInStartHour:  7,
		CheckInEndHour:    10,
		CheckOutStartHour: 17,
	}
}
