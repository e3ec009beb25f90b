package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
)

var (
	ErrNotFound = apperr.NotFound("profile not found")
	ErrHidden   = apperr.Permission("this profile is not visible to you")
)

// Repository: порт хранения обоих типов профиля. Create* идемпотентны,
// существующий профиль пользователя не перезаписывается.
type Repository interface {
	CreateSeeker(ctx context.Context, p JobSeekerProfile) error
	CreateEmployer(ctx context.Context, p EmployerProfile) error
	GetSeeker(ctx context.Context, userID uuid.UUID) (JobSeekerProfile, error)
	GetEmployer(ctx context.Context, userID uuid.UUID) (EmployerProfile, error)
	UpdateSeeker(ctx context.Context, p JobSeekerProfile) error
	UpdateEmployer(ctx context.Context, p EmployerProfile) error
	SetEmployerVerified(ctx context.Context, userID uuid.UUID, verified bool) error
}
