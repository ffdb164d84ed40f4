package attendance

import (
	"github.com/worklane/jobboard-backend-go/internal/pkg/validator"
)

// Action is a requested attendance marking.
type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
)

// MarkRequest is a check-in or check-out attempt. Latitude and Longitude are
// pointers so a client whose geolocation acquisition failed can be told apart
// from one standing at (0, 0).
type MarkRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasPosition reports whether the client supplied usable coordinates.
func (r *MarkRequest) HasPosition() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// LocationSnapshotResponse mirrors LocationSnapshot on the wire.
type LocationSnapshotResponse struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
}

// NearestLocationInfo is attached to geofence rejections so the client can
// compute and display the exact meter deficit.
type NearestLocationInfo struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
	RequiredRadius float64 `json:"required_radius_meters"`
}

type AttendanceResponse struct {
	ID               string                    `json:"id"`
	UserID           string                    `json:"user_id"`
	UserName         *string                   `json:"user_name,omitempty"`
	Date             string                    `json:"date"`
	CheckInTime      string                    `json:"check_in_time"`
	CheckOutTime     *string                   `json:"check_out_time,omitempty"`
	CheckInLocation  LocationSnapshotResponse  `json:"check_in_location"`
	CheckOutLocation *LocationSnapshotResponse `json:"check_out_location,omitempty"`
	Status           string                    `json:"status"`
	WorkHours        *float64                  `json:"work_hours,omitempty"`
	MissedCheckout   bool                      `json:"missed_checkout,omitempty"`
}

type AttendanceFilter struct {
	UserID    *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{StatusCheckedIn, StatusCheckedOut}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be checked-in or checked-out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
