package settings

import (
	"github.com/worklane/jobboard-backend-go/internal/pkg/validator"
)

type TimeSettingsResponse struct {
	CheckInStartHour  int `json:"check_in_start_hour"`
	CheckInEndHour    int `json:"check_in_end_hour"`
	CheckOutStartHour int `json:"check_out_start_hour"`
}

type UpdateTimeSettingsRequest struct {
	CheckInStartHour  int `json:"check_in_start_hour"`
	CheckInEndHour    int `json:"check_in_end_hour"`
	CheckOutStartHour int `json:"check_out_start_hour"`
}

func (r *UpdateTimeSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidHour(r.CheckInStartHour) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_start_hour",
			Message: "check_in_start_hour must be between 0 and 23",
		})
	}
	if !validator.IsValidHour(r.CheckInEndHour) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_end_hour",
			Message: "check_in_end_hour must be between 0 and 23",
		})
	}
	if !validator.IsValidHour(r.CheckOutStartHour) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_start_hour",
			Message: "check_out_start_hour must be between 0 and 23",
		})
	}
	if validator.IsValidHour(r.CheckInStartHour) && validator.IsValidHour(r.CheckInEndHour) &&
		r.CheckInStartHour >= r.CheckInEndHour {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_start_hour",
			Message: "check_in_start_hour must be before check_in_end_hour",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
