package auth

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/jobboard/pkg/apperr"
)

const minPasswordLen = 8

// PostCreateHook runs after a user row has been stored. Hooks are registered
// explicitly at startup (e.g. profile provisioning keyed by role).
type PostCreateHook interface {
	AfterUserCreated(ctx context.Context, user User) error
}

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Get(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, f UserFilter, limit, offset int) ([]User, int, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (User, error)
	// IsActive is false for deactivated and for deleted users.
	IsActive(ctx context.Context, id uuid.UUID) (bool, error)
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     Role
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo    UserRepository
	tokens  TokenGenerator
	revoker TokenRevoker
	hooks   []PostCreateHook
	now     func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
// revoker may be nil, in which case Logout only succeeds.
func NewAuthService(repo UserRepository, tokens TokenGenerator, revoker TokenRevoker, hooks ...PostCreateHook) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, revoker: revoker, hooks: hooks, now: time.Now}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if email == "" || in.Password == "" {
		return AuthResult{}, apperr.Validation("email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, apperr.Validation("invalid email address")
	}
	if len(in.Password) < minPasswordLen {
		return AuthResult{}, apperr.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	// Admins are provisioned out of band, never through public registration.
	if in.Role != RoleJobSeeker && in.Role != RoleEmployer {
		return AuthResult{}, apperr.Validation("role must be job_seeker or employer")
	}
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	// If user exists, fail fast (best-effort check; the unique index decides)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	for _, h := range s.hooks {
		if err := h.AfterUserCreated(ctx, user); err != nil {
			// A user without its profile cannot apply or post, so undo the row.
			if derr := s.repo.Delete(ctx, user.ID); derr != nil {
				log.Printf("auth: remove user %s after failed hook: %v", user.ID, derr)
			}
			return AuthResult{}, fmt.Errorf("post-create hook: %w", err)
		}
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return AuthResult{}, ErrInactive
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	if !expiresAt.After(s.now()) {
		return nil
	}
	return s.revoker.Revoke(ctx, tokenID, expiresAt)
}

func (s *authService) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authService) List(ctx context.Context, f UserFilter, limit, offset int) ([]User, int, error) {
	return s.repo.List(ctx, f, limit, offset)
}

func (s *authService) ToggleActive(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	user.IsActive = !user.IsActive
	if err := s.repo.SetActive(ctx, id, user.IsActive); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	user, err := s.repo.GetByID(ctx, id)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsActive, nil
}
