package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = apperr.NotFound("user not found")
	ErrUserAlreadyExists  = apperr.Duplicate("a user with this email or username already exists")
	ErrInvalidCredentials = apperr.Validation("invalid email or password")
	ErrInactive           = apperr.Permission("account is deactivated")
)

// UserFilter narrows admin user listings. Zero values mean "any".
type UserFilter struct {
	Role   Role
	Search string
	Active *bool
}

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, f UserFilter, limit, offset int) ([]User, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
