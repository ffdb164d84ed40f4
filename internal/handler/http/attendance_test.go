package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
)

type fakeAttendanceService struct {
	checkInResp attendance.AttendanceResponse
	checkInErr  error
	listResp    attendance.ListAttendanceResponse
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if f.checkInErr != nil {
		return attendance.AttendanceResponse{}, f.checkInErr
	}
	return f.checkInResp, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	return f.checkInResp, nil
}

func (f *fakeAttendanceService) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return f.listResp, nil
}

func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return f.listResp, nil
}

func (f *fakeAttendanceService) ExportCSV(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, error) {
	return []byte("date,user\n"), nil
}

func markRequestBody(t *testing.T, lat, lng float64) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(attendance.MarkRequest{Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResp: attendance.AttendanceResponse{
			ID:          "att-1",
			UserID:      "emp-1",
			Date:        "2026-03-02",
			CheckInTime: "2026-03-02 09:30:00",
			CheckInLocation: attendance.LocationSnapshotResponse{
				Name:           "Headquarters",
				DistanceMeters: 12.5,
			},
			Status: attendance.StatusCheckedIn,
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/check-in", markRequestBody(t, -6.2, 106.8))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                          `json:"success"`
		Message string                        `json:"message"`
		Data    attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Checked in successfully", resp.Message)
	assert.Equal(t, "att-1", resp.Data.ID)
	assert.Equal(t, "Headquarters", resp.Data.CheckInLocation.Name)
}

func TestAttendanceHandler_CheckIn_InvalidBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/check-in", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_CheckIn_OutOfRangeCarriesExactDistances(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInErr: &attendance.OutOfRangeError{
			LocationName:   "Headquarters",
			DistanceMeters: 150.25,
			RadiusMeters:   100,
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/check-in", markRequestBody(t, -6.3, 106.9))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string                         `json:"code"`
			Data attendance.NearestLocationInfo `json:"data"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "OUT_OF_RANGE", resp.Error.Code)
	assert.Equal(t, "Headquarters", resp.Error.Data.Name)
	assert.Equal(t, 150.25, resp.Error.Data.DistanceMeters)
	assert.Equal(t, 100.0, resp.Error.Data.RequiredRadius)
}

func TestAttendanceHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/check-in", markRequestBody(t, -6.2, 106.8))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_List_RejectsBadStatusFilter(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances?status=sleeping", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceHandler_ExportCSV_SetsDownloadHeaders(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances/export", nil)
	rec := httptest.NewRecorder()
	handler.ExportCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "date,user")
}
