package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/job"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type jobRepository struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepository{db: db}
}

// Create implements job.JobRepository.
func (r *jobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (
			title, company_name, location, type, salary_min, salary_max,
			description, deadline, status, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		j.Title, j.CompanyName, j.Location, j.Type, j.SalaryMin, j.SalaryMax,
		j.Description, j.Deadline, j.Status, j.CreatedBy,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)

	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return j, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.title, j.company_name, j.location, j.type, j.salary_min, j.salary_max,
			   j.description, j.deadline, j.status, j.created_by, j.created_at, j.updated_at,
			   COUNT(a.id) AS application_count
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE j.id = $1
		GROUP BY j.id
	`

	var j job.Job
	err := q.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Type, &j.SalaryMin, &j.SalaryMax,
		&j.Description, &j.Deadline, &j.Status, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
		&j.ApplicationCount,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// Update implements job.JobRepository.
func (r *jobRepository) Update(ctx context.Context, j job.Job) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET title = $2, company_name = $3, location = $4, type = $5,
			salary_min = $6, salary_max = $7, description = $8,
			deadline = $9, status = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		j.ID, j.Title, j.CompanyName, j.Location, j.Type,
		j.SalaryMin, j.SalaryMax, j.Description, j.Deadline, j.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// List implements job.JobRepository.
func (r *jobRepository) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Keyword != nil && *filter.Keyword != "" {
		baseWhere += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.company_name ILIKE $%d OR j.description ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Keyword+"%")
		argIdx++
	}
	if filter.Location != nil && *filter.Location != "" {
		baseWhere += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Location+"%")
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND j.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND j.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM jobs j WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	orderByField := "j.created_at"
	switch filter.SortBy {
	case "title":
		orderByField = "j.title"
	case "deadline":
		orderByField = "j.deadline"
	case "company":
		orderByField = "j.company_name"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT j.id, j.title, j.company_name, j.location, j.type, j.salary_min, j.salary_max,
			   j.description, j.deadline, j.status, j.created_by, j.created_at, j.updated_at,
			   COUNT(a.id) AS application_count
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE %s
		GROUP BY j.id
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
		return nil, 0, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		var j job.Job
		err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Type, &j.SalaryMin, &j.SalaryMax,
			&j.Description, &j.Deadline, &j.Status, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
			&j.ApplicationCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, total, nil
}
