package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/application"
	"github.com/worklane/jobboard-backend-go/internal/domain/job"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
	"github.com/worklane/jobboard-backend-go/internal/pkg/email"
	"github.com/worklane/jobboard-backend-go/internal/service/file"
)

type ApplicationServiceImpl struct {
	db *database.DB
	application.ApplicationRepository
	job.JobRepository
	fileService  file.FileService
	emailService email.EmailService

	now func() time.Time
}

func NewApplicationService(
	db *database.DB,
	applicationRepo application.ApplicationRepository,
	jobRepo job.JobRepository,
	fileService file.FileService,
	emailService email.EmailService,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		db:                    db,
		ApplicationRepository: applicationRepo,
		JobRepository:         jobRepo,
		fileService:           fileService,
		emailService:          emailService,
		now:                   time.Now,
	}
}

func candidateFromContext(ctx context.Context) (id string, name string, emailAddr string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	id, _ = claims["user_id"].(string)
	emailAddr, _ = claims["email"].(string)
	name, _ = claims["full_name"].(string)
	if id == "" {
		return "", "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return id, name, emailAddr, nil
}

// Apply implements application.ApplicationService.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, req application.ApplyRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	candidateID, candidateName, candidateEmail, err := candidateFromContext(ctx)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	jobData, err := s.JobRepository.GetByID(ctx, req.JobID)
	if err != nil {
		return application.ApplicationResponse{}, err
	}
	if !jobData.IsOpen(s.now()) {
		return application.ApplicationResponse{}, job.ErrJobClosed
	}

	existing, err := s.ApplicationRepository.GetByJobAndCandidate(ctx, req.JobID, candidateID)
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return application.ApplicationResponse{}, application.ErrAlreadyApplied
	}

	resumePath, err := s.fileService.UploadResume(ctx, candidateID, req.File, req.FileHeader.Filename)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	newApp := application.Application{
		JobID:       req.JobID,
		CandidateID: candidateID,
		ResumePath:  resumePath,
		CoverLetter: req.CoverLetter,
		Status:      application.StatusApplied,
	}

	created, err := s.ApplicationRepository.Create(ctx, newApp)
	if err != nil {
		// The resume upload is orphaned on failure; remove it.
		if delErr := s.fileService.DeleteFile(ctx, resumePath); delErr != nil {
			slog.Warn("failed to delete orphaned resume", "path", resumePath, "error", delErr)
		}
		return application.ApplicationResponse{}, err
	}

	created.JobTitle = &jobData.Title
	created.CompanyName = &jobData.CompanyName

	go func() {
		if err := s.emailService.SendApplicationReceived(candidateEmail, candidateName, jobData.Title, jobData.CompanyName); err != nil {
			slog.Warn("failed to send application confirmation email", "application_id", created.ID, "error", err)
		}
	}()

	return s.mapToResponse(ctx, created), nil
}

// Get implements application.ApplicationService.
func (s *ApplicationServiceImpl) Get(ctx context.Context, id string) (application.ApplicationResponse, error) {
	app, err := s.ApplicationRepository.GetByID(ctx, id)
	if err != nil {
		return application.ApplicationResponse{}, err
	}
	return s.mapToResponse(ctx, app), nil
}

// UpdateStatus implements application.ApplicationService.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, req application.UpdateStatusRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	newStatus := application.Status(req.Status)
	if err := s.ApplicationRepository.UpdateStatus(ctx, req.ID, newStatus); err != nil {
		return application.ApplicationResponse{}, err
	}
	app.Status = newStatus

	if app.CandidateEmail != nil {
		to := *app.CandidateEmail
		candidateName := ""
		if app.CandidateName != nil {
			candidateName = *app.CandidateName
		}
		jobTitle := ""
		if app.JobTitle != nil {
			jobTitle = *app.JobTitle
		}
		go func() {
			if err := s.emailService.SendApplicationStatusUpdate(to, candidateName, jobTitle, req.Status); err != nil {
				slog.Warn("failed to send status update email", "application_id", app.ID, "error", err)
			}
		}()
	}

	return s.mapToResponse(ctx, app), nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context, filter application.ApplicationFilter) (application.ListApplicationsResponse, error) {
	if err := filter.Validate(); err != nil {
		return application.ListApplicationsResponse{}, err
	}

	apps, total, err := s.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return application.ListApplicationsResponse{}, fmt.Errorf("failed to list applications: %w", err)
	}

	return s.buildListResponse(ctx, apps, total, filter), nil
}

// ListMine implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListMine(ctx context.Context, filter application.ApplicationFilter) (application.ListApplicationsResponse, error) {
	if err := filter.Validate(); err != nil {
		return application.ListApplicationsResponse{}, err
	}

	candidateID, _, _, err := candidateFromContext(ctx)
	if err != nil {
		return application.ListApplicationsResponse{}, err
	}

	apps, total, err := s.ApplicationRepository.ListByCandidate(ctx, candidateID, filter)
	if err != nil {
		return application.ListApplicationsResponse{}, fmt.Errorf("failed to list my applications: %w", err)
	}

	return s.buildListResponse(ctx, apps, total, filter), nil
}

// ExportCSV implements application.ApplicationService.
func (s *ApplicationServiceImpl) ExportCSV(ctx context.Context, filter application.ApplicationFilter) ([]byte, error) {
	filter.Page = 1
	filter.Limit = math.MaxInt32

	apps, _, err := s.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"applied_at", "job", "company", "candidate", "email", "status"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	for _, app := range apps {
		row := []string{
			app.CreatedAt.Format("2006-01-02 15:04:05"),
			str(app.JobTitle),
			str(app.CompanyName),
			str(app.CandidateName),
			str(app.CandidateEmail),
			string(app.Status),
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

func (s *ApplicationServiceImpl) buildListResponse(ctx context.Context, apps []application.Application, total int64, filter application.ApplicationFilter) application.ListApplicationsResponse {
	responses := make([]application.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, s.mapToResponse(ctx, app))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return application.ListApplicationsResponse{
		TotalCount:   total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
		Applications: responses,
	}
}

func (s *ApplicationServiceImpl) mapToResponse(ctx context.Context, app application.Application) application.ApplicationResponse {
	resumeURL, err := s.fileService.GetFileURL(ctx, app.ResumePath, 15*time.Minute)
	if err != nil {
		slog.Warn("failed to build resume url", "application_id", app.ID, "error", err)
		resumeURL = ""
	}

	return application.ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		CompanyName:    app.CompanyName,
		CandidateID:    app.CandidateID,
		CandidateName:  app.CandidateName,
		CandidateEmail: app.CandidateEmail,
		ResumeURL:      resumeURL,
		CoverLetter:    app.CoverLetter,
		Status:         string(app.Status),
		CreatedAt:      app.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      app.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
