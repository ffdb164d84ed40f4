package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/application"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements application.ApplicationRepository. The applications table
// has a unique index on (job_id, candidate_id).
func (r *applicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (job_id, candidate_id, resume_path, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.ResumePath, app.CoverLetter, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return application.Application{}, application.ErrAlreadyApplied
		}
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.resume_path, a.cover_letter, a.status,
			   a.created_at, a.updated_at,
			   j.title AS job_title, j.company_name,
			   u.full_name AS candidate_name, u.email AS candidate_email
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		LEFT JOIN users u ON u.id = a.candidate_id
		WHERE a.id = $1
	`

	var app application.Application
	err := q.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumePath, &app.CoverLetter, &app.Status,
		&app.CreatedAt, &app.UpdatedAt,
		&app.JobTitle, &app.CompanyName, &app.CandidateName, &app.CandidateEmail,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// GetByJobAndCandidate implements application.ApplicationRepository.
func (r *applicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, job_id, candidate_id, resume_path, cover_letter, status, created_at, updated_at
		FROM applications
		WHERE job_id = $1 AND candidate_id = $2
		LIMIT 1
	`

	var app application.Application
	err := q.QueryRow(ctx, query, jobID, candidateID).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumePath, &app.CoverLetter, &app.Status,
		&app.CreatedAt, &app.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Candidate has not applied to this job
		}
		return nil, fmt.Errorf("failed to get application by job and candidate: %w", err)
	}

	return &app, nil
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status application.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}

	return nil
}

// List implements application.ApplicationRepository.
func (r *applicationRepository) List(ctx context.Context, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	return r.list(ctx, "1=1", []interface{}{}, 1, filter)
}

// ListByCandidate implements application.ApplicationRepository.
func (r *applicationRepository) ListByCandidate(ctx context.Context, candidateID string, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	return r.list(ctx, "a.candidate_id = $1", []interface{}{candidateID}, 2, filter)
}

func (r *applicationRepository) list(ctx context.Context, baseWhere string, args []interface{}, argIdx int, filter application.ApplicationFilter) ([]application.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	if filter.JobID != nil && *filter.JobID != "" {
		baseWhere += fmt.Sprintf(" AND a.job_id = $%d", argIdx)
		args = append(args, *filter.JobID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (u.full_name ILIKE $%d OR u.email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.created_at >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.created_at < ($%d::date + INTERVAL '1 day')", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM applications a
		LEFT JOIN users u ON u.id = a.candidate_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	orderByField := "a.created_at"
	switch filter.SortBy {
	case "status":
		orderByField = "a.status"
	case "candidate":
		orderByField = "u.full_name"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.job_id, a.candidate_id, a.resume_path, a.cover_letter, a.status,
			   a.created_at, a.updated_at,
			   j.title AS job_title, j.company_name,
			   u.full_name AS candidate_name, u.email AS candidate_email
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		LEFT JOIN users u ON u.id = a.candidate_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		var app application.Application
		err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.ResumePath, &app.CoverLetter, &app.Status,
			&app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.CompanyName, &app.CandidateName, &app.CandidateEmail,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, total, nil
}
