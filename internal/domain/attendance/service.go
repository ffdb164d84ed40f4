package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, req MarkRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req MarkRequest) (AttendanceResponse, error)
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ExportCSV(ctx context.Context, filter AttendanceFilter) ([]byte, error)
}
