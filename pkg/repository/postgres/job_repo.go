package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/nlp"
)

// jobColumns and jobFrom match the aliases job.Query predicates are written against.
const (
	jobColumns = `j.id, j.employer_id, e.company_name, j.category_id, COALESCE(c.name, ''), j.title,
		j.description, j.requirements, j.responsibilities, j.job_type, j.experience_level, j.location,
		j.is_remote, j.salary_min, j.salary_max, j.salary_currency, j.required_skills, j.preferred_skills,
		j.status, j.deadline, j.views_count, j.created_at, j.updated_at`
	jobFrom = `jobs j
		JOIN employer_profiles e ON e.user_id = j.employer_id
		LEFT JOIN job_categories c ON c.id = j.category_id`
	applicationsCount = `(SELECT count(*) FROM job_applications a WHERE a.job_id = j.id)`

	jobsCategoryFK = "jobs_category_id_fkey"
	jobsEmployerFK = "jobs_employer_id_fkey"
)

var _ job.Repository = (*JobRepository)(nil)

// JobRepository хранит вакансии и категории.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row scanner, extra ...any) (job.Job, error) {
	var (
		j                   job.Job
		jobType, level      string
		required, preferred string
		status              string
	)
	dest := []any{&j.ID, &j.EmployerID, &j.CompanyName, &j.CategoryID, &j.CategoryName, &j.Title,
		&j.Description, &j.Requirements, &j.Responsibilities, &jobType, &level, &j.Location,
		&j.IsRemote, &j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency, &required, &preferred,
		&status, &j.Deadline, &j.ViewsCount, &j.CreatedAt, &j.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return job.Job{}, err
	}
	j.Type = job.Type(jobType)
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Status = job.Status(status)
	j.RequiredSkills = nlp.ParseList(required)
	j.PreferredSkills = nlp.ParseList(preferred)
	j.CreatedAt, j.UpdatedAt = j.CreatedAt.UTC(), j.UpdatedAt.UTC()
	return j, nil
}

func scanListing(row scanner) (job.Listing, error) {
	var l job.Listing
	j, err := scanJob(row, &l.ApplicationsCount)
	if err != nil {
		return job.Listing{}, err
	}
	l.Job = j
	return l, nil
}

func scanJobRow(row scanner) (job.Job, error) { return scanJob(row) }

// jobWriteError maps foreign key failures to the entity that is missing.
func jobWriteError(err error) error {
	switch code, constraint := constraintError(err); {
	case code == codeForeignKeyViolation && constraint == jobsCategoryFK:
		return job.ErrCategoryNotFound
	case code == codeForeignKeyViolation && constraint == jobsEmployerFK:
		return fmt.Errorf("%w: employer profile missing", job.ErrNotFound)
	}
	return mapError(err, job.ErrNotFound)
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, employer_id, category_id, title, description, requirements, responsibilities,
			job_type, experience_level, location, is_remote, salary_min, salary_max, salary_currency,
			required_skills, preferred_skills, status, deadline, views_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 0, $19, $20)
	`, j.ID, j.EmployerID, j.CategoryID, strings.TrimSpace(j.Title), j.Description, j.Requirements, j.Responsibilities,
		string(j.Type), string(j.ExperienceLevel), j.Location, j.IsRemote, j.SalaryMin, j.SalaryMax, j.SalaryCurrency,
		nlp.FormatList(j.RequiredSkills), nlp.FormatList(j.PreferredSkills), string(j.Status), j.Deadline,
		j.CreatedAt, j.UpdatedAt)
	return jobWriteError(err)
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE jobs SET category_id = $2, title = $3, description = $4, requirements = $5,
			responsibilities = $6, job_type = $7, experience_level = $8, location = $9, is_remote = $10,
			salary_min = $11, salary_max = $12, salary_currency = $13, required_skills = $14,
			preferred_skills = $15, status = $16, deadline = $17, updated_at = $18
		WHERE id = $1
	`, j.ID, j.CategoryID, strings.TrimSpace(j.Title), j.Description, j.Requirements,
		j.Responsibilities, string(j.Type), string(j.ExperienceLevel), j.Location, j.IsRemote,
		j.SalaryMin, j.SalaryMax, j.SalaryCurrency, nlp.FormatList(j.RequiredSkills),
		nlp.FormatList(j.PreferredSkills), string(j.Status), j.Deadline, j.UpdatedAt)
	if err != nil {
		return jobWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM `+jobFrom+` WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		return job.Job{}, mapError(err, job.ErrNotFound)
	}
	return j, nil
}

// Search runs a built query; total counts every match, not just the returned page.
func (r *JobRepository) Search(ctx context.Context, q job.Query, limit, offset int) ([]job.Job, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM `+jobFrom+` `+q.WhereSQL(), q.Args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	sql := `SELECT ` + jobColumns + ` FROM ` + jobFrom + ` ` + q.WhereSQL() +
		` ORDER BY ` + q.OrderBy + ` LIMIT ` + q.Bind(limit) + ` OFFSET ` + q.Bind(offset)
	rows, err := r.pool.Query(ctx, sql, q.Args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(rows, scanJobRow)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *JobRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx, `UPDATE jobs SET views_count = views_count + 1 WHERE id = $1 RETURNING views_count`, id).Scan(&views)
	if err != nil {
		return 0, mapError(err, job.ErrNotFound)
	}
	return views, nil
}

func (r *JobRepository) ViewerFlags(ctx context.Context, jobID, seekerID uuid.UUID) (bool, bool, error) {
	var applied, saved bool
	err := r.pool.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2),
			EXISTS (SELECT 1 FROM saved_jobs WHERE job_id = $1 AND seeker_id = $2)
	`, jobID, seekerID).Scan(&applied, &saved)
	return applied, saved, err
}

func (r *JobRepository) Related(ctx context.Context, j job.Job, limit int) ([]job.Job, error) {
	if j.CategoryID == nil {
		return []job.Job{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM `+jobFrom+`
		WHERE j.status = 'active' AND j.category_id = $1 AND j.id <> $2
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $3
	`, *j.CategoryID, j.ID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJobRow)
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Listing, int, error) {
	q := job.Query{OrderBy: "j.created_at DESC, j.id DESC"}
	q.Where = append(q.Where, "j.employer_id = "+q.Bind(employerID))
	return r.listings(ctx, q, limit, offset)
}

func (r *JobRepository) ListAll(ctx context.Context, f job.AdminFilter, limit, offset int) ([]job.Listing, int, error) {
	return r.listings(ctx, job.BuildAdminList(f), limit, offset)
}

func (r *JobRepository) listings(ctx context.Context, q job.Query, limit, offset int) ([]job.Listing, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM `+jobFrom+` `+q.WhereSQL(), q.Args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	sql := `SELECT ` + jobColumns + `, ` + applicationsCount + ` FROM ` + jobFrom + ` ` + q.WhereSQL() +
		` ORDER BY ` + q.OrderBy + ` LIMIT ` + q.Bind(limit) + ` OFFSET ` + q.Bind(offset)
	rows, err := r.pool.Query(ctx, sql, q.Args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(rows, scanListing)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// AllJobs returns every job with its application count for the CSV export.
func (r *JobRepository) AllJobs(ctx context.Context) ([]job.Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`, `+applicationsCount+` FROM `+jobFrom+`
		ORDER BY j.created_at, j.id
	`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanListing)
}

func (r *JobRepository) SetStatus(ctx context.Context, id uuid.UUID, status job.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return mapError(err, job.ErrNotFound)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ListCategories(ctx context.Context) ([]job.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.description, c.created_at,
			count(j.id) FILTER (WHERE j.status = 'active')
		FROM job_categories c
		LEFT JOIN jobs j ON j.category_id = c.id
		GROUP BY c.id, c.name, c.description, c.created_at
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (job.Category, error) {
		var c job.Category
		if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ActiveJobs); err != nil {
			return job.Category{}, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		return c, nil
	})
}

func (r *JobRepository) CreateCategory(ctx context.Context, c job.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO job_categories (id, name, description, created_at) VALUES ($1, $2, $3, $4)
	`, c.ID, c.Name, c.Description, c.CreatedAt)
	if code, _ := constraintError(err); code == codeUniqueViolation {
		return job.ErrCategoryExists
	}
	return mapError(err, job.ErrCategoryNotFound)
}
