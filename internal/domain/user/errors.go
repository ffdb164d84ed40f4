package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrUserDeactivated         = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrEmployeeAccessRequired  = errors.New("employee access required")
	ErrCandidateAccessRequired = errors.New("candidate access required")
	ErrInvalidRole             = errors.New("invalid role")
)
