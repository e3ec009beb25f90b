package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/job"
)

const (
	applicationColumns = `a.id, a.job_id, a.applicant_id, a.cover_letter, a.status, a.employer_notes,
		a.applied_at, a.updated_at, j.employer_id, j.title, e.company_name,
		COALESCE(NULLIF(TRIM(s.first_name || ' ' || s.last_name), ''), u.username), u.email`
	applicationFrom = `job_applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN employer_profiles e ON e.user_id = j.employer_id
		JOIN job_seeker_profiles s ON s.user_id = a.applicant_id
		JOIN users u ON u.id = a.applicant_id`
)

var _ application.Repository = (*ApplicationRepository)(nil)

// ApplicationRepository хранит отклики. Каждая смена статуса выполняется одним
// условным запросом, поэтому два параллельных запроса не могут пройти оба.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func scanApplication(row scanner) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &status, &a.EmployerNotes,
		&a.AppliedAt, &a.UpdatedAt, &a.EmployerID, &a.JobTitle, &a.CompanyName,
		&a.ApplicantName, &a.ApplicantEmail)
	if err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.AppliedAt, a.UpdatedAt = a.AppliedAt.UTC(), a.UpdatedAt.UTC()
	return a, nil
}

// Create inserts only while the job is active; the unique (job, applicant) pair rejects
// a second application.
func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO job_applications (id, job_id, applicant_id, cover_letter, status, employer_notes, applied_at, updated_at)
		SELECT $1::uuid, j.id, $3::uuid, $4::text, $5::text, '', $6::timestamptz, $6::timestamptz
		FROM jobs j
		WHERE j.id = $2::uuid AND j.status = 'active'
	`, a.ID, a.JobID, a.ApplicantID, a.CoverLetter, string(a.Status), a.AppliedAt)
	if err != nil {
		if code, _ := constraintError(err); code == codeUniqueViolation {
			return application.ErrAlreadyApplied
		}
		return mapError(err, application.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrJobNotActive
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM `+applicationFrom+` WHERE a.id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		return application.Application{}, mapError(err, application.ErrNotFound)
	}
	return a, nil
}

func (r *ApplicationRepository) DeletePending(ctx context.Context, id, applicantID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM job_applications WHERE id = $1 AND applicant_id = $2 AND status = 'pending'
	`, id, applicantID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to application.Status, notes string, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE job_applications SET status = $3, employer_notes = $4, updated_at = $5
		WHERE id = $1 AND status = $2
	`, id, string(from), string(to), notes, at)
	if err != nil {
		return false, mapError(err, application.ErrNotFound)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID, f application.Filter, limit, offset int) ([]application.Application, int, error) {
	q := job.Query{}
	q.Where = append(q.Where, "a.applicant_id = "+q.Bind(applicantID))
	return r.list(ctx, q, f, limit, offset)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, f application.Filter, limit, offset int) ([]application.Application, int, error) {
	q := job.Query{}
	q.Where = append(q.Where, "a.job_id = "+q.Bind(jobID))
	return r.list(ctx, q, f, limit, offset)
}

func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, f application.Filter, limit, offset int) ([]application.Application, int, error) {
	q := job.Query{}
	q.Where = append(q.Where, "j.employer_id = "+q.Bind(employerID))
	return r.list(ctx, q, f, limit, offset)
}

func (r *ApplicationRepository) list(ctx context.Context, q job.Query, f application.Filter, limit, offset int) ([]application.Application, int, error) {
	if f.Status != "" {
		q.Where = append(q.Where, "a.status = "+q.Bind(string(f.Status)))
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM `+applicationFrom+` `+q.WhereSQL(), q.Args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	sql := `SELECT ` + applicationColumns + ` FROM ` + applicationFrom + ` ` + q.WhereSQL() +
		` ORDER BY a.applied_at DESC, a.id DESC LIMIT ` + q.Bind(limit) + ` OFFSET ` + q.Bind(offset)
	rows, err := r.pool.Query(ctx, sql, q.Args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(rows, scanApplication)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// recent lists the newest applications across the platform.
func (r *ApplicationRepository) recent(ctx context.Context, limit int) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+` FROM `+applicationFrom+`
		ORDER BY a.applied_at DESC, a.id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanApplication)
}
