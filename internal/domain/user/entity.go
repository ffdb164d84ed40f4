package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"     // Manages jobs, applications, users, settings
	RoleEmployee  Role = "employee"  // Marks attendance, requests leave
	RoleCandidate Role = "candidate" // Browses and applies to jobs
)

type User struct {
	ID              string
	FullName        string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user can manage board content
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployee checks if user can mark attendance and request leave
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}
