package savedjob

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/job"
)

type pair struct{ job, seeker uuid.UUID }

type memRepo struct {
	rows map[pair]time.Time
}

func (m *memRepo) Delete(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	k := pair{jobID, seekerID}
	if _, ok := m.rows[k]; !ok {
		return false, nil
	}
	delete(m.rows, k)
	return true, nil
}

func (m *memRepo) Insert(_ context.Context, _, jobID, seekerID uuid.UUID, at time.Time) error {
	k := pair{jobID, seekerID}
	if _, ok := m.rows[k]; !ok {
		m.rows[k] = at
	}
	return nil
}

func (m *memRepo) List(_ context.Context, seekerID uuid.UUID, _, _ int) ([]Saved, int, error) {
	var out []Saved
	for k, at := range m.rows {
		if k.seeker == seekerID {
			out = append(out, Saved{Job: job.Job{ID: k.job}, SavedAt: at})
		}
	}
	return out, len(out), nil
}

func (m *memRepo) Count(_ context.Context, seekerID uuid.UUID) (int, error) {
	_, n, err := m.List(context.Background(), seekerID, 0, 0)
	return n, err
}

type jobs map[uuid.UUID]job.Job

func (j jobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	x, ok := j[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return x, nil
}

func TestToggleRoundTrip(t *testing.T) {
	repo := &memRepo{rows: map[pair]time.Time{}}
	j := job.Job{ID: uuid.New()}
	svc := NewService(repo, jobs{j.ID: j})
	seeker := uuid.New()

	saved, err := svc.Toggle(context.Background(), seeker, j.ID)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Len(t, repo.rows, 1)

	saved, err = svc.Toggle(context.Background(), seeker, j.ID)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, repo.rows)
}

func TestToggleMissingJob(t *testing.T) {
	svc := NewService(&memRepo{rows: map[pair]time.Time{}}, jobs{})
	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestListNeverNil(t *testing.T) {
	svc := NewService(&memRepo{rows: map[pair]time.Time{}}, jobs{})
	items, total, err := svc.List(context.Background(), uuid.New(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Zero(t, total)
}
