package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/jobboard-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(_ context.Context, googleID string, email string) (user.User, error) {
	u, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return user.User{}, err
	}
	provider := "google"
	u.OAuthProvider = &provider
	u.OAuthProviderID = &googleID
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, role user.Role) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	var all []user.User
	for _, u := range f.users {
		if filter.Role != nil && string(u.Role) != *filter.Role {
			continue
		}
		all = append(all, u)
	}
	total := int64(len(all))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func seedUsers(n int, role user.Role) []user.User {
	users := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, user.User{
			ID:       fmt.Sprintf("user-%d", i+1),
			FullName: fmt.Sprintf("User %d", i+1),
			Email:    fmt.Sprintf("user-%d@worklane.io", i+1),
			Role:     role,
			IsActive: true,
		})
	}
	return users
}

func TestList_ComputesTotalPages(t *testing.T) {
	repo := newFakeUserRepo(seedUsers(45, user.RoleCandidate)...)
	svc := NewUserService(nil, repo)

	resp, err := svc.List(context.Background(), user.ListFilter{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(45), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Users, 20)
}

func TestList_RejectsUnknownRoleFilter(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo())

	badRole := "manager"
	_, err := svc.List(context.Background(), user.ListFilter{Role: &badRole, Page: 1, Limit: 20})
	require.Error(t, err)
}

func TestUpdateRole_PromotesCandidate(t *testing.T) {
	repo := newFakeUserRepo(seedUsers(1, user.RoleCandidate)...)
	svc := NewUserService(nil, repo)

	resp, err := svc.UpdateRole(context.Background(), user.UpdateRoleRequest{
		ID:   "user-1",
		Role: string(user.RoleEmployee),
	})
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleEmployee), resp.Role)
}

func TestSetActive_Deactivates(t *testing.T) {
	repo := newFakeUserRepo(seedUsers(1, user.RoleEmployee)...)
	svc := NewUserService(nil, repo)

	resp, err := svc.SetActive(context.Background(), "user-1", false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}
