package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/attendance"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The attendances table has
// a unique index on (user_id, date); callers translate its violation.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, check_in,
			check_in_location_name, check_in_distance_meters, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID,
		att.Date,
		att.CheckIn,
		att.CheckInLocation.Name,
		att.CheckInLocation.DistanceMeters,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in, check_out,
			   check_in_location_name, check_in_distance_meters,
			   check_out_location_name, check_out_distance_meters,
			   status, work_hours, created_at, updated_at
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	var outName *string
	var outDistance *float64
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.CheckInLocation.Name, &att.CheckInLocation.DistanceMeters,
		&outName, &outDistance,
		&att.Status, &att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for that day yet
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	if outName != nil && outDistance != nil {
		att.CheckOutLocation = &attendance.LocationSnapshot{
			Name:           *outName,
			DistanceMeters: *outDistance,
		}
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2,
			check_out_location_name = $3,
			check_out_distance_meters = $4,
			status = $5,
			work_hours = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	var outName *string
	var outDistance *float64
	if att.CheckOutLocation != nil {
		outName = &att.CheckOutLocation.Name
		outDistance = &att.CheckOutLocation.DistanceMeters
	}

	tag, err := q.Exec(ctx, query, att.ID, att.CheckOut, outName, outDistance, att.Status, att.WorkHours)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	return a.list(ctx, baseWhere, args, argIdx, filter)
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return a.list(ctx, "a.user_id = $1", []interface{}{userID}, 2, filter)
}

func (a *attendanceRepository) list(ctx context.Context, baseWhere string, args []interface{}, argIdx int, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.date, a.check_in, a.check_out,
			   a.check_in_location_name, a.check_in_distance_meters,
			   a.check_out_location_name, a.check_out_distance_meters,
			   a.status, a.work_hours, a.created_at, a.updated_at,
			   u.full_name AS user_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date DESC, a.check_in DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var outName *string
		var outDistance *float64
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.CheckInLocation.Name, &att.CheckInLocation.DistanceMeters,
			&outName, &outDistance,
			&att.Status, &att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if outName != nil && outDistance != nil {
			att.CheckOutLocation = &attendance.LocationSnapshot{
				Name:           *outName,
				DistanceMeters: *outDistance,
			}
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}
