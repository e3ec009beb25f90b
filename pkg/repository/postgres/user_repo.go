package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
)

const userColumns = `id, email, username, password_hash, role, is_active, created_at`

var _ auth.UserRepository = (*UserRepository)(nil)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row scanner) (auth.User, error) {
	var u auth.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt); err != nil {
		return auth.User{}, err
	}
	u.Role = auth.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, strings.ToLower(user.Email), user.Username, user.PasswordHash, string(user.Role), user.IsActive, user.CreatedAt)
	if code, _ := constraintError(err); code == codeUniqueViolation {
		return auth.ErrUserAlreadyExists
	}
	return mapError(err, auth.ErrNotFound)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	u, err := scanUser(row)
	if err != nil {
		return auth.User{}, mapError(err, auth.ErrNotFound)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return auth.User{}, mapError(err, auth.ErrNotFound)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context, f auth.UserFilter, limit, offset int) ([]auth.User, int, error) {
	q := job.Query{}
	if f.Role.Valid() {
		q.Where = append(q.Where, "role = "+q.Bind(string(f.Role)))
	}
	if f.Active != nil {
		q.Where = append(q.Where, "is_active = "+q.Bind(*f.Active))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := q.Bind(job.ContainsPattern(s))
		q.Where = append(q.Where, "(username ILIKE "+p+" OR email ILIKE "+p+")")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users `+q.WhereSQL(), q.Args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	sql := `SELECT ` + userColumns + ` FROM users ` + q.WhereSQL() +
		` ORDER BY created_at DESC, id DESC LIMIT ` + q.Bind(limit) + ` OFFSET ` + q.Bind(offset)
	rows, err := r.pool.Query(ctx, sql, q.Args...)
	if err != nil {
		return nil, 0, err
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

// Delete removes a user; profile rows go with it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

// AllUsers returns every user, oldest first, for the CSV export.
func (r *UserRepository) AllUsers(ctx context.Context) ([]auth.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}
