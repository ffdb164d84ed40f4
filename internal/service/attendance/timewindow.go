package attendance

import (
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
)

// checkWindow applies the hour-granular marking rules. Check-in is allowed in
// [CheckInStartHour, CheckInEndHour): the lower bound is inclusive, the upper
// bound exclusive, so a request at CheckInEndHour:00 is already rejected.
// Check-out opens at CheckOutStartHour and stays open until the midnight
// rollover; the asymmetry with check-in is deliberate product behavior.
func checkWindow(action attendance.Action, hour int, s settings.TimeSettings) error {
	switch action {
	case attendance.ActionCheckIn:
		if hour < s.CheckInStartHour || hour >= s.CheckInEndHour {
			return &attendance.TimeWindowError{
				Action:    action,
				StartHour: s.CheckInStartHour,
				EndHour:   s.CheckInEndHour,
			}
		}
	case attendance.ActionCheckOut:
		if hour < s.CheckOutStartHour {
			return &attendance.TimeWindowError{
				Action:    action,
				StartHour: s.CheckOutStartHour,
				EndHour:   -1,
			}
		}
	}
	return nil
}
