package leave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/leave"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
	"github.com/worklane/jobboard-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	emailService email.EmailService

	now func() time.Time
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository, emailService email.EmailService) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
		emailService:    emailService,
		now:             time.Now,
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

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlapping, err := s.HasOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeaveRequest
	}

	newRequest := leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, newRequest)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapToResponse(created), nil
}

// Decide implements leave.LeaveService. A request is decided at most once.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := s.now()
	request.Status = leave.StatusRejected
	if req.Approved {
		request.Status = leave.StatusApproved
	}
	request.DecidedBy = &adminID
	request.DecidedAt = &decidedAt
	request.Note = req.Note

	if err := s.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.EmployeeEmail != nil {
		to := *request.EmployeeEmail
		employeeName := ""
		if request.EmployeeName != nil {
			employeeName = *request.EmployeeName
		}
		decision := string(request.Status)
		startDate := request.StartDate.Format("2006-01-02")
		endDate := request.EndDate.Format("2006-01-02")
		go func() {
			if err := s.emailService.SendLeaveDecision(to, employeeName, request.Type, startDate, endDate, decision, req.Note); err != nil {
				slog.Warn("failed to send leave decision email", "leave_request_id", request.ID, "error", err)
			}
		}()
	}

	return mapToResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list my leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

func buildListResponse(requests []leave.LeaveRequest, total int64, filter leave.LeaveFilter) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapToResponse(request))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}
}

func mapToResponse(request leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: request.EmployeeName,
		Type:         request.Type,
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Days:         request.Days(),
		Reason:       request.Reason,
		Status:       string(request.Status),
		Note:         request.Note,
		CreatedAt:    request.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
