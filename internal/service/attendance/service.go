package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	location.LocationRepository
	settings.SettingsRepository

	// now is swappable so the hour-window and work-hour logic can be tested.
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	locationRepo location.LocationRepository,
	settingsRepo settings.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		LocationRepository:   locationRepo,
		SettingsRepository:   settingsRepo,
		now:                  time.Now,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !req.HasPosition() {
		return attendance.AttendanceResponse{}, attendance.ErrLocationUnavailable
	}

	// The calendar day and the hour window are both evaluated in UTC.
	now := a.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// The day's record is resolved first. A duplicate check-in is reported
	// as such even when the caller is out of range or outside the window.
	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		// One record per day regardless of its status.
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	nearest, err := a.matchPosition(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeSettings, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get time settings: %w", err)
	}
	if err := checkWindow(attendance.ActionCheckIn, now.Hour(), timeSettings); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: now,
		CheckInLocation: attendance.LocationSnapshot{
			Name:           nearest.Location.Name,
			DistanceMeters: nearest.DistanceMeters,
		},
		Status: attendance.StatusCheckedIn,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if database.IsUniqueViolation(err) {
			// Lost the race against a concurrent check-in for the same day.
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.mapToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// State is checked before geofence and time so a missing check-in is
	// always reported as such.
	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if !req.HasPosition() {
		return attendance.AttendanceResponse{}, attendance.ErrLocationUnavailable
	}

	// Checkout is geofenced the same way as check-in.
	nearest, err := a.matchPosition(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeSettings, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get time settings: %w", err)
	}
	if err := checkWindow(attendance.ActionCheckOut, now.Hour(), timeSettings); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workHours := now.Sub(record.CheckIn).Hours()

	record.CheckOut = &now
	record.CheckOutLocation = &attendance.LocationSnapshot{
		Name:           nearest.Location.Name,
		DistanceMeters: nearest.DistanceMeters,
	}
	record.WorkHours = &workHours
	record.Status = attendance.StatusCheckedOut

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return a.mapToResponse(*record), nil
}

// matchPosition resolves the nearest allowed location and enforces its radius.
func (a *AttendanceServiceImpl) matchPosition(ctx context.Context, lat, lng float64) (match, error) {
	locations, err := a.LocationRepository.GetAll(ctx)
	if err != nil {
		return match{}, fmt.Errorf("failed to get allowed locations: %w", err)
	}

	nearest, err := findNearest(lat, lng, locations)
	if err != nil {
		return match{}, err
	}
	if !nearest.InRange() {
		return match{}, &attendance.OutOfRangeError{
			LocationName:   nearest.Location.Name,
			DistanceMeters: nearest.DistanceMeters,
			RadiusMeters:   nearest.Location.RadiusMeters,
		}
	}
	return nearest, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list my attendance: %w", err)
	}

	return a.buildListResponse(records, total, filter), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return a.buildListResponse(records, total, filter), nil
}

// ExportCSV implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ExportCSV(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, error) {
	// Export everything matching the filter in one pass.
	filter.Page = 1
	filter.Limit = math.MaxInt32

	records, _, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "user", "check_in", "check_out", "check_in_location", "check_out_location", "status", "work_hours"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		userName := rec.UserID
		if rec.UserName != nil {
			userName = *rec.UserName
		}
		checkOut := ""
		checkOutLocation := ""
		if rec.CheckOut != nil {
			checkOut = rec.CheckOut.Format("2006-01-02 15:04:05")
		}
		if rec.CheckOutLocation != nil {
			checkOutLocation = rec.CheckOutLocation.Name
		}
		workHours := ""
		if rec.WorkHours != nil {
			workHours = strconv.FormatFloat(*rec.WorkHours, 'f', 2, 64)
		}

		row := []string{
			rec.Date.Format("2006-01-02"),
			userName,
			rec.CheckIn.Format("2006-01-02 15:04:05"),
			checkOut,
			rec.CheckInLocation.Name,
			checkOutLocation,
			rec.Status,
			workHours,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func (a *AttendanceServiceImpl) buildListResponse(records []attendance.Attendance, total int64, filter attendance.AttendanceFilter) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, a.mapToResponse(rec))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}

func (a *AttendanceServiceImpl) mapToResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		UserName:    rec.UserName,
		Date:        rec.Date.Format("2006-01-02"),
		CheckInTime: rec.CheckIn.Format("2006-01-02 15:04:05"),
		CheckInLocation: attendance.LocationSnapshotResponse{
			Name:           rec.CheckInLocation.Name,
			DistanceMeters: rec.CheckInLocation.DistanceMeters,
		},
		Status:         rec.Status,
		WorkHours:      rec.WorkHours,
		MissedCheckout: rec.MissedCheckout(a.now()),
	}

	if rec.CheckOut != nil {
		formatted := rec.CheckOut.Format("2006-01-02 15:04:05")
		resp.CheckOutTime = &formatted
	}
	if rec.CheckOutLocation != nil {
		resp.CheckOutLocation = &attendance.LocationSnapshotResponse{
			Name:           rec.CheckOutLocation.Name,
			DistanceMeters: rec.CheckOutLocation.DistanceMeters,
		}
	}

	return resp
}
