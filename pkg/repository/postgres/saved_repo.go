package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/savedjob"
)

var _ savedjob.Repository = (*SavedJobRepository)(nil)

// SavedJobRepository хранит закладки соискателей на вакансии.
type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

func (r *SavedJobRepository) Delete(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE job_id = $1 AND seeker_id = $2`, jobID, seekerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SavedJobRepository) Insert(ctx context.Context, id, jobID, seekerID uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_jobs (id, job_id, seeker_id, saved_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id, seeker_id) DO NOTHING
	`, id, jobID, seekerID, at)
	return mapError(err, job.ErrNotFound)
}

func (r *SavedJobRepository) List(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]savedjob.Saved, int, error) {
	total, err := r.Count(ctx, seekerID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`, sj.id, sj.saved_at
		FROM saved_jobs sj
		JOIN (`+jobFrom+`) ON j.id = sj.job_id
		WHERE sj.seeker_id = $1
		ORDER BY sj.saved_at DESC, sj.id DESC
		LIMIT $2 OFFSET $3
	`, seekerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(rows, func(row scanner) (savedjob.Saved, error) {
		var s savedjob.Saved
		j, err := scanJob(row, &s.ID, &s.SavedAt)
		if err != nil {
			return savedjob.Saved{}, err
		}
		s.Job = j
		s.SavedAt = s.SavedAt.UTC()
		return s, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SavedJobRepository) Count(ctx context.Context, seekerID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM saved_jobs WHERE seeker_id = $1`, seekerID).Scan(&n)
	return n, err
}
