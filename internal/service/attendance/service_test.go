package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) key(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := r.key(att.UserID, att.Date)
	if _, ok := r.records[k]; ok {
		// Same SQLSTATE the (user_id, date) unique index raises.
		return attendance.Attendance{}, &pgconn.PgError{Code: "23505"}
	}
	r.nextID++
	att.ID = "att-" + time.Now().Format("150405") + "-" + string(rune('a'+r.nextID))
	r.records[k] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := r.records[r.key(userID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	r.records[r.key(att.UserID, att.Date)] = att
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAttendanceRepo) ListByUser(_ context.Context, userID string, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range r.records {
		if att.UserID == userID {
			out = append(out, att)
		}
	}
	return out, int64(len(out)), nil
}

// racingAttendanceRepo pretends the day has no record yet so Create hits the
// unique index, mirroring two concurrent check-ins.
type racingAttendanceRepo struct {
	*fakeAttendanceRepo
}

func (r *racingAttendanceRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

type fakeLocationRepo struct {
	locations []location.AllowedLocation
}

func (r *fakeLocationRepo) Create(_ context.Context, loc location.AllowedLocation) (location.AllowedLocation, error) {
	return loc, nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, _ string) (location.AllowedLocation, error) {
	return location.AllowedLocation{}, nil
}

func (r *fakeLocationRepo) GetAll(_ context.Context) ([]location.AllowedLocation, error) {
	return r.locations, nil
}

func (r *fakeLocationRepo) Update(_ context.Context, _ location.UpdateLocationRequest) error {
	return nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeSettingsRepo struct {
	settings settings.TimeSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (settings.TimeSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s settings.TimeSettings) error {
	r.settings = s
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func ptrFloat(v float64) *float64 { return &v }

func headquarters() []location.AllowedLocation {
	return []location.AllowedLocation{
		{ID: "loc-1", Name: "HQ", Latitude: 0, Longitude: 0, RadiusMeters: 100},
	}
}

func newTestService(
	attRepo attendance.AttendanceRepository,
	locations []location.AllowedLocation,
	timeSettings settings.TimeSettings,
) *AttendanceServiceImpl {
	svc := NewAttendanceService(
		nil,
		attRepo,
		&fakeLocationRepo{locations: locations},
		&fakeSettingsRepo{settings: timeSettings},
	).(*AttendanceServiceImpl)
	return svc
}

func TestCheckIn_Success(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	}

	resp, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(0),
		Longitude: ptrFloat(0),
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "2026-03-02 09:30:00", resp.CheckInTime)
	assert.Equal(t, attendance.StatusCheckedIn, resp.Status)
	assert.Equal(t, "HQ", resp.CheckInLocation.Name)
	assert.Equal(t, float64(0), resp.CheckInLocation.DistanceMeters)
	assert.Nil(t, resp.CheckOutTime)
	assert.Nil(t, resp.WorkHours)
}

func TestCheckIn_MissingCoordinates(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{})
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)

	_, err = svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{Latitude: ptrFloat(0)})
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)
}

func TestCheckIn_NoLocationsConfigured(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), nil, settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(0),
		Longitude: ptrFloat(0),
	})
	assert.ErrorIs(t, err, attendance.ErrNoLocationsConfigured)
}

func TestCheckIn_OutOfRangeReportsExactDeficit(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	// ~150 m north of HQ, which only allows 100 m.
	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(150.0 / 111195.0),
		Longitude: ptrFloat(0),
	})

	var outErr *attendance.OutOfRangeError
	require.ErrorAs(t, err, &outErr)
	assert.Equal(t, "HQ", outErr.LocationName)
	assert.Equal(t, float64(100), outErr.RadiusMeters)
	assert.InDelta(t, 150, outErr.DistanceMeters, 0.5)
	assert.InDelta(t, 50, outErr.Deficit(), 0.5)
	assert.Equal(t, outErr.DistanceMeters-outErr.RadiusMeters, outErr.Deficit())

	assert.Empty(t, repo.records, "rejected check-in must not create a record")
}

func TestCheckIn_OutsideWindow(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		// Default check-in window is [7, 10); 10:00 is already too late.
		return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(0),
		Longitude: ptrFloat(0),
	})

	var windowErr *attendance.TimeWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, attendance.ActionCheckIn, windowErr.Action)
	assert.Equal(t, 7, windowErr.StartHour)
	assert.Equal(t, 10, windowErr.EndHour)
	assert.Empty(t, repo.records)
}

func TestCheckIn_DuplicateSameDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	}

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	first, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	stored, err := repo.GetByUserAndDate(ctx, "user-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.CheckInTime, stored.CheckIn.Format("2006-01-02 15:04:05"),
		"original record must be untouched")
}

func TestCheckIn_DuplicateAfterCheckout(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, req)
	require.NoError(t, err)

	// A completed day still refuses a second cycle.
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }
	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_ConcurrentInsertLosesCleanly(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	}

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	// The racing repo reports no record on lookup, so the duplicate is only
	// caught by the unique index on insert.
	svc.AttendanceRepository = &racingAttendanceRepo{fakeAttendanceRepo: repo}
	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_InvalidLatitude(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), headquarters(), settings.Defaults())

	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(91),
		Longitude: ptrFloat(0),
	})
	assert.Error(t, err)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	}

	// Coordinates are out of range and would also fail the geofence; the
	// missing check-in must win regardless.
	_, err := svc.CheckOut(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(45),
		Longitude: ptrFloat(45),
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_BeforeWindowOpens(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 16, 59, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, req)

	var windowErr *attendance.TimeWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, attendance.ActionCheckOut, windowErr.Action)
	assert.Equal(t, 17, windowErr.StartHour)
	assert.Equal(t, -1, windowErr.EndHour)
}

func TestCheckOut_FullDayCycle(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC) }
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusCheckedOut, resp.Status)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "2026-03-02 19:00:00", *resp.CheckOutTime)
	require.NotNil(t, resp.CheckOutLocation)
	assert.Equal(t, "HQ", resp.CheckOutLocation.Name)
	require.NotNil(t, resp.WorkHours)
	assert.InDelta(t, 9.5, *resp.WorkHours, 1e-9)
	assert.False(t, resp.MissedCheckout)

	// Replaying the checkout is rejected and leaves the record intact.
	_, err = svc.CheckOut(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	stored, err := repo.GetByUserAndDate(ctx, "user-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.InDelta(t, 9.5, *stored.WorkHours, 1e-9)
}

func TestCheckOut_MissingCoordinates(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())

	ctx := authedContext(t, "user-1")

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(ctx, attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(ctx, attendance.MarkRequest{})
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)
}

func TestGetMyAttendance_FlagsMissedCheckout(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())

	ctx := authedContext(t, "user-1")
	req := attendance.MarkRequest{Latitude: ptrFloat(0), Longitude: ptrFloat(0)}

	// Check in yesterday and never check out.
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	list, err := svc.GetMyAttendance(ctx, attendance.AttendanceFilter{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, list.Attendances, 1)
	rec := list.Attendances[0]
	assert.Equal(t, attendance.StatusCheckedIn, rec.Status)
	assert.True(t, rec.MissedCheckout)
	assert.Nil(t, rec.CheckOutTime)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, 1, list.TotalPages)
}

func TestCheckIn_NonUTCClockBucketsUTCDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.TimeSettings{
		CheckInStartHour:  20,
		CheckInEndHour:    23,
		CheckOutStartHour: 23,
	})
	jakarta := time.FixedZone("WIB", 7*3600)
	// 04:30 on March 3 in UTC+7 is 21:30 on March 2 in UTC.
	svc.now = func() time.Time {
		return time.Date(2026, 3, 3, 4, 30, 0, 0, jakarta)
	}

	resp, err := svc.CheckIn(authedContext(t, "user-1"), attendance.MarkRequest{
		Latitude:  ptrFloat(0),
		Longitude: ptrFloat(0),
	})
	require.NoError(t, err)

	// Both the day key and the window hour come from the UTC clock.
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "2026-03-02 21:30:00", resp.CheckInTime)
	_, ok := repo.records["user-1|2026-03-02"]
	assert.True(t, ok)
}

func TestCheckIn_DuplicateReportedBeforeGeofence(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, headquarters(), settings.Defaults())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}

	ctx := authedContext(t, "user-1")
	_, err := svc.CheckIn(ctx, attendance.MarkRequest{
		Latitude:  ptrFloat(0),
		Longitude: ptrFloat(0),
	})
	require.NoError(t, err)

	// Far outside the radius. The duplicate still wins over the geofence.
	_, err = svc.CheckIn(ctx, attendance.MarkRequest{
		Latitude:  ptrFloat(10),
		Longitude: ptrFloat(10),
	})
	require.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	var outOfRange *attendance.OutOfRangeError
	assert.False(t, errors.As(err, &outOfRange))
}
