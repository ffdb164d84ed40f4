package response

import (
	"errors"
	"net/http"

	"github.com/worklane/jobboard-backend-go/internal/domain/application"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/auth"
	"github.com/worklane/jobboard-backend-go/internal/domain/job"
	"github.com/worklane/jobboard-backend-go/internal/domain/leave"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/domain/user"
	"github.com/worklane/jobboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the nearest location and the exact distances
	// used in the check so the client can show the meter deficit.
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		UnprocessableWithData(w, "OUT_OF_RANGE", outOfRange.Error(), attendance.NearestLocationInfo{
			Name:           outOfRange.LocationName,
			DistanceMeters: outOfRange.DistanceMeters,
			RequiredRadius: outOfRange.RadiusMeters,
		})
		return
	}

	var timeWindow *attendance.TimeWindowError
	if errors.As(err, &timeWindow) {
		UnprocessableWithData(w, "OUTSIDE_TIME_WINDOW", timeWindow.Error(), map[string]interface{}{
			"action":     string(timeWindow.Action),
			"start_hour": timeWindow.StartHour,
			"end_hour":   timeWindow.EndHour,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserDeactivated):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrEmployeeAccessRequired),
		errors.Is(err, user.ErrCandidateAccessRequired):
		Forbidden(w, err.Error())

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobClosed):
		Conflict(w, "Job is no longer accepting applications")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrAlreadyApplied):
		Conflict(w, "You have already applied to this job")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeaveRequest):
		Conflict(w, "An overlapping leave request already exists")

	// Allowed location errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Allowed location not found")
	case errors.Is(err, location.ErrLocationNameExists):
		Conflict(w, "An allowed location with this name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoLocationsConfigured):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrLocationUnavailable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
