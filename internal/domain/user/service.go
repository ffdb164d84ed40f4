package user

import "context"

type UserService interface {
	List(ctx context.Context, filter ListFilter) (ListUsersResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserResponse, error)
	SetActive(ctx context.Context, id string, active bool) (UserResponse, error)
}
