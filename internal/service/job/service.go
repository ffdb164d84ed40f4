package job

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/job"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type JobServiceImpl struct {
	db *database.DB
	job.JobRepository
}

func NewJobService(db *database.DB, jobRepository job.JobRepository) job.JobService {
	return &JobServiceImpl{
		db:            db,
		JobRepository: jobRepository,
	}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return job.JobResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	createdBy, _ := claims["user_id"].(string)

	newJob := job.Job{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Type:        req.Type,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Description: req.Description,
		Status:      job.StatusOpen,
		CreatedBy:   createdBy,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("failed to parse deadline: %w", err)
		}
		newJob.Deadline = &deadline
	}

	created, err := s.JobRepository.Create(ctx, newJob)
	if err != nil {
		return job.JobResponse{}, err
	}

	return mapToResponse(created), nil
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, id string) (job.JobResponse, error) {
	found, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return mapToResponse(found), nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	existing, err := s.JobRepository.GetByID(ctx, req.ID)
	if err != nil {
		return job.JobResponse{}, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.CompanyName != nil {
		existing.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Type != nil {
		existing.Type = *req.Type
	}
	if req.SalaryMin != nil {
		existing.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		existing.SalaryMax = req.SalaryMax
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return job.JobResponse{}, fmt.Errorf("failed to parse deadline: %w", err)
		}
		existing.Deadline = &deadline
	}
	if req.Status != nil {
		existing.Status = job.Status(*req.Status)
	}

	if err := s.JobRepository.Update(ctx, existing); err != nil {
		return job.JobResponse{}, err
	}

	return mapToResponse(existing), nil
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	return s.JobRepository.Delete(ctx, id)
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context, filter job.JobFilter) (job.ListJobsResponse, error) {
	if err := filter.Validate(); err != nil {
		return job.ListJobsResponse{}, err
	}

	jobs, total, err := s.JobRepository.List(ctx, filter)
	if err != nil {
		return job.ListJobsResponse{}, fmt.Errorf("failed to list jobs: %w", err)
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, mapToResponse(j))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return job.ListJobsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Jobs:       responses,
	}, nil
}

func mapToResponse(j job.Job) job.JobResponse {
	resp := job.JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		CompanyName:      j.CompanyName,
		Location:         j.Location,
		Type:             j.Type,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		Description:      j.Description,
		Status:           string(j.Status),
		ApplicationCount: j.ApplicationCount,
		CreatedAt:        j.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if j.Deadline != nil {
		formatted := j.Deadline.Format("2006-01-02")
		resp.Deadline = &formatted
	}
	return resp
}
