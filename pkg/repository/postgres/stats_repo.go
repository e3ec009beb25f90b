package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/stats"
)

type seriesSource struct {
	table, column string
}

// Only these table/column pairs are ever interpolated into SQL.
var seriesSources = map[stats.Series]seriesSource{
	stats.SeriesUsers:        {"users", "created_at"},
	stats.SeriesJobs:         {"jobs", "created_at"},
	stats.SeriesApplications: {"job_applications", "applied_at"},
}

var _ stats.Store = (*StatsRepository)(nil)

// StatsRepository implements stats.Store with read-only aggregate queries. Buckets are
// computed in UTC.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) UserTotals(ctx context.Context, since time.Time) (stats.UserTotals, error) {
	var t stats.UserTotals
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE role = 'job_seeker'),
			count(*) FILTER (WHERE role = 'employer'),
			count(*) FILTER (WHERE created_at >= $1)
		FROM users
	`, since).Scan(&t.Total, &t.JobSeekers, &t.Employers, &t.NewInWindow)
	return t, err
}

func (r *StatsRepository) JobTotals(ctx context.Context, since time.Time) (stats.JobTotals, error) {
	var t stats.JobTotals
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'active'),
			count(*) FILTER (WHERE created_at >= $1)
		FROM jobs
	`, since).Scan(&t.Total, &t.Active, &t.NewInWindow)
	return t, err
}

func (r *StatsRepository) ApplicationTotals(ctx context.Context, since time.Time) (stats.ApplicationTotals, error) {
	var t stats.ApplicationTotals
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'accepted'),
			count(*) FILTER (WHERE applied_at >= $1)
		FROM job_applications
	`, since).Scan(&t.Total, &t.Pending, &t.Accepted, &t.NewInWindow)
	return t, err
}

func (r *StatsRepository) ApplicationsByStatus(ctx context.Context) ([]stats.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM job_applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (stats.StatusCount, error) {
		var sc stats.StatusCount
		err := row.Scan(&sc.Status, &sc.Count)
		return sc, err
	})
}

func (r *StatsRepository) TopCategories(ctx context.Context, limit int) ([]stats.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, count(j.id) FILTER (WHERE j.status = 'active') AS active
		FROM job_categories c
		LEFT JOIN jobs j ON j.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY active DESC, c.name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (stats.CategoryCount, error) {
		var cc stats.CategoryCount
		err := row.Scan(&cc.ID, &cc.Name, &cc.ActiveJobs)
		return cc, err
	})
}

func (r *StatsRepository) DailyCounts(ctx context.Context, s stats.Series, from time.Time) (map[string]int, error) {
	return r.bucketCounts(ctx, s, "YYYY-MM-DD", from)
}

func (r *StatsRepository) MonthlyCounts(ctx context.Context, s stats.Series, from time.Time) (map[string]int, error) {
	return r.bucketCounts(ctx, s, "YYYY-MM", from)
}

func (r *StatsRepository) bucketCounts(ctx context.Context, s stats.Series, format string, from time.Time) (map[string]int, error) {
	src, ok := seriesSources[s]
	if !ok {
		return nil, fmt.Errorf("unknown series %q", s)
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT to_char(%[2]s AT TIME ZONE 'UTC', '%[3]s') AS bucket, count(*)
		FROM %[1]s
		WHERE %[2]s >= $1
		GROUP BY bucket
	`, src.table, src.column, format), from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var bucket string
		var n int
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, err
		}
		out[bucket] = n
	}
	return out, rows.Err()
}

func (r *StatsRepository) CountBefore(ctx context.Context, s stats.Series, t time.Time) (int, error) {
	src, ok := seriesSources[s]
	if !ok {
		return 0, fmt.Errorf("unknown series %q", s)
	}
	var n int
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s < $1`, src.table, src.column), t).Scan(&n)
	return n, err
}

func (r *StatsRepository) CategoryStats(ctx context.Context) ([]stats.CategoryStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name,
			count(DISTINCT j.id),
			count(DISTINCT j.id) FILTER (WHERE j.status = 'active'),
			count(a.id)
		FROM job_categories c
		LEFT JOIN jobs j ON j.category_id = c.id
		LEFT JOIN job_applications a ON a.job_id = j.id
		GROUP BY c.id, c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (stats.CategoryStat, error) {
		var cs stats.CategoryStat
		err := row.Scan(&cs.ID, &cs.Name, &cs.TotalJobs, &cs.ActiveJobs, &cs.TotalApplications)
		return cs, err
	})
}

func (r *StatsRepository) EmployerStats(ctx context.Context, limit int) ([]stats.EmployerStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.user_id, e.company_name, count(DISTINCT j.id), count(a.id) AS applications
		FROM employer_profiles e
		LEFT JOIN jobs j ON j.employer_id = e.user_id
		LEFT JOIN job_applications a ON a.job_id = j.id
		GROUP BY e.user_id, e.company_name
		ORDER BY applications DESC, e.company_name, e.user_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row scanner) (stats.EmployerStat, error) {
		var es stats.EmployerStat
		err := row.Scan(&es.EmployerID, &es.CompanyName, &es.TotalJobs, &es.TotalApplications)
		return es, err
	})
}

func (r *StatsRepository) RecentUsers(ctx context.Context, limit int) ([]auth.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

func (r *StatsRepository) RecentJobs(ctx context.Context, limit int) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM `+jobFrom+` ORDER BY j.created_at DESC, j.id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJobRow)
}

func (r *StatsRepository) RecentApplications(ctx context.Context, limit int) ([]application.Application, error) {
	return NewApplicationRepository(r.pool).recent(ctx, limit)
}

func (r *StatsRepository) EmployerJobCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error) {
	return r.statusCounts(ctx, `SELECT status, count(*) FROM jobs WHERE employer_id = $1 GROUP BY status`, employerID)
}

func (r *StatsRepository) EmployerApplicationCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error) {
	return r.statusCounts(ctx, `
		SELECT a.status, count(*)
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.employer_id = $1
		GROUP BY a.status
	`, employerID)
}

func (r *StatsRepository) statusCounts(ctx context.Context, sql string, args ...any) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *StatsRepository) SeekerCounts(ctx context.Context, seekerID uuid.UUID) (int, int, error) {
	var applications, saved int
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM job_applications WHERE applicant_id = $1),
			(SELECT count(*) FROM saved_jobs WHERE seeker_id = $1)
	`, seekerID).Scan(&applications, &saved)
	return applications, saved, err
}
