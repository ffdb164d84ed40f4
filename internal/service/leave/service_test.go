package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, req leave.LeaveRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[req.ID] = req
	return nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmailService struct {
	leaveDecisions chan string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{leaveDecisions: make(chan string, 1)}
}

func (f *fakeEmailService) SendApplicationReceived(to, candidateName, jobTitle, companyName string) error {
	return nil
}

func (f *fakeEmailService) SendApplicationStatusUpdate(to, candidateName, jobTitle, status string) error {
	return nil
}

func (f *fakeEmailService) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, decision string, note *string) error {
	f.leaveDecisions <- decision
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo leave.LeaveRepository, emails *fakeEmailService) (*LeaveServiceImpl, error) {
	svc, ok := NewLeaveService(nil, repo, emails).(*LeaveServiceImpl)
	if !ok {
		return nil, fmt.Errorf("unexpected service type")
	}
	return svc, nil
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "2026-04-06", resp.StartDate)
	assert.Equal(t, "2026-04-08", resp.EndDate)
}

func TestCreate_RejectsInvalidType(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "sabbatical",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "time off",
	})
	require.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestCreate_RejectsOverlap(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	// Intersects the tail of the pending request.
	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "sick",
		StartDate: "2026-04-10",
		EndDate:   "2026-04-12",
		Reason:    "recovery",
	})
	require.ErrorIs(t, err, leave.ErrOverlappingLeaveRequest)
	assert.Len(t, repo.requests, 1)
}

func TestCreate_OverlapIgnoresRejected(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	rejected := repo.requests[resp.ID]
	rejected.Status = leave.StatusRejected
	repo.requests[resp.ID] = rejected

	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2026-04-08",
		EndDate:   "2026-04-09",
		Reason:    "second attempt",
	})
	require.NoError(t, err)
}

func TestDecide_ApproveSendsEmail(t *testing.T) {
	repo := newFakeLeaveRepo()
	emails := newFakeEmailService()
	svc, err := newTestService(repo, emails)
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	created, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-08",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	stored := repo.requests[created.ID]
	employeeEmail := "emp-1@worklane.io"
	stored.EmployeeEmail = &employeeEmail
	repo.requests[created.ID] = stored

	adminCtx := authedContext(t, "admin-1")
	decided, err := svc.Decide(adminCtx, leave.DecideLeaveRequest{
		ID:       created.ID,
		Approved: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)

	select {
	case decision := <-emails.leaveDecisions:
		assert.Equal(t, "approved", decision)
	case <-time.After(time.Second):
		t.Fatal("expected a leave decision email")
	}

	assert.Equal(t, leave.StatusApproved, repo.requests[created.ID].Status)
	require.NotNil(t, repo.requests[created.ID].DecidedBy)
	assert.Equal(t, "admin-1", *repo.requests[created.ID].DecidedBy)
}

func TestDecide_AlreadyProcessed(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	ctx := authedContext(t, "emp-1")
	created, err := svc.Create(ctx, leave.CreateLeaveRequest{
		Type:      "sick",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-06",
		Reason:    "flu",
	})
	require.NoError(t, err)

	adminCtx := authedContext(t, "admin-1")
	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequest{ID: created.ID, Approved: false})
	require.NoError(t, err)

	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequest{ID: created.ID, Approved: true})
	require.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Equal(t, leave.StatusRejected, repo.requests[created.ID].Status)
}

func TestDecide_NotFound(t *testing.T) {
	svc, err := newTestService(newFakeLeaveRepo(), newFakeEmailService())
	require.NoError(t, err)

	adminCtx := authedContext(t, "admin-1")
	_, err = svc.Decide(adminCtx, leave.DecideLeaveRequest{ID: "missing", Approved: true})
	require.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListMine_OnlyOwnRequests(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, err := newTestService(repo, newFakeEmailService())
	require.NoError(t, err)

	first := authedContext(t, "emp-1")
	_, err = svc.Create(first, leave.CreateLeaveRequest{
		Type: "annual", StartDate: "2026-04-06", EndDate: "2026-04-07", Reason: "trip",
	})
	require.NoError(t, err)

	second := authedContext(t, "emp-2")
	_, err = svc.Create(second, leave.CreateLeaveRequest{
		Type: "annual", StartDate: "2026-04-06", EndDate: "2026-04-07", Reason: "trip",
	})
	require.NoError(t, err)

	resp, err := svc.ListMine(first, leave.LeaveFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, "emp-1", resp.Requests[0].EmployeeID)
	assert.Equal(t, 1, resp.TotalPages)
}
