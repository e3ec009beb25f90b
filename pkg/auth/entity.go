package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role is the tag that decides which profile type and permissions apply to a user.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Roles lists every role tag in display order.
func Roles() []Role { return []Role{RoleJobSeeker, RoleEmployer, RoleAdmin} }

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the caller as established by the auth middleware.
// The zero value is an anonymous caller.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) Authenticated() bool { return i.UserID != uuid.Nil }

func (i Identity) Is(role Role) bool { return i.Authenticated() && i.Role == role }
