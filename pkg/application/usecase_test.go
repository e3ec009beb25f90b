package application

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/job"
)

// memStore mimics the conditional statements of the SQL repository.
type memStore struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]job.Job
	apps map[uuid.UUID]Application
}

func newMemStore() *memStore {
	return &memStore{jobs: map[uuid.UUID]job.Job{}, apps: map[uuid.UUID]Application{}}
}

func (m *memStore) addJob(status job.Status) job.Job {
	j := job.Job{ID: uuid.New(), EmployerID: uuid.New(), Title: "Engineer", Status: status}
	m.jobs[j.ID] = j
	return j
}

func (m *memStore) GetByIDJob(_ context.Context, id uuid.UUID) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

type jobReader struct{ m *memStore }

func (r jobReader) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	return r.m.GetByIDJob(ctx, id)
}

func (m *memStore) Create(_ context.Context, a Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[a.JobID]; !ok || j.Status != job.StatusActive {
		return ErrJobNotActive
	}
	for _, x := range m.apps {
		if x.JobID == a.JobID && x.ApplicantID == a.ApplicantID {
			return ErrAlreadyApplied
		}
	}
	m.apps[a.ID] = a
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	a.EmployerID = m.jobs[a.JobID].EmployerID
	return a, nil
}

func (m *memStore) DeletePending(_ context.Context, id, applicantID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok || a.ApplicantID != applicantID || a.Status != StatusPending {
		return false, nil
	}
	delete(m.apps, id)
	return true, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id uuid.UUID, from, to Status, notes string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status, a.EmployerNotes, a.UpdatedAt = to, notes, at
	m.apps[id] = a
	return true, nil
}

func (m *memStore) list(match func(Application) bool) ([]Application, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Application
	for _, a := range m.apps {
		if match(a) {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func (m *memStore) ListByApplicant(_ context.Context, id uuid.UUID, f Filter, _, _ int) ([]Application, int, error) {
	return m.list(func(a Application) bool { return a.ApplicantID == id && (f.Status == "" || a.Status == f.Status) })
}

func (m *memStore) ListByJob(_ context.Context, id uuid.UUID, f Filter, _, _ int) ([]Application, int, error) {
	return m.list(func(a Application) bool { return a.JobID == id && (f.Status == "" || a.Status == f.Status) })
}

func (m *memStore) ListByEmployer(_ context.Context, id uuid.UUID, f Filter, _, _ int) ([]Application, int, error) {
	return m.list(func(a Application) bool {
		return m.jobs[a.JobID].EmployerID == id && (f.Status == "" || a.Status == f.Status)
	})
}

func setup(t *testing.T, table Transitions) (*memStore, UseCase) {
	t.Helper()
	m := newMemStore()
	return m, NewService(m, jobReader{m}, table)
}

func TestApplyTwiceYieldsOneRowAndDuplicate(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	seeker := uuid.New()

	a, err := svc.Apply(context.Background(), seeker, j.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)

	_, err = svc.Apply(context.Background(), seeker, j.ID, "again")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
	assert.Len(t, m.apps, 1)
}

func TestConcurrentApplyKeepsOneRow(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	seeker := uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Apply(context.Background(), seeker, j.ID, "")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyApplied)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, m.apps, 1)
}

func TestApplyRequiresActiveJob(t *testing.T) {
	m, svc := setup(t, nil)
	for _, st := range []job.Status{job.StatusDraft, job.StatusPaused, job.StatusClosed} {
		j := m.addJob(st)
		_, err := svc.Apply(context.Background(), uuid.New(), j.ID, "")
		assert.ErrorIs(t, err, ErrJobNotActive, st)
	}
	_, err := svc.Apply(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestWithdraw(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	seeker := uuid.New()

	pending, err := svc.Apply(context.Background(), seeker, j.ID, "")
	require.NoError(t, err)
	require.NoError(t, svc.Withdraw(context.Background(), seeker, pending.ID))
	assert.NotContains(t, m.apps, pending.ID)

	again, err := svc.Apply(context.Background(), seeker, j.ID, "")
	require.NoError(t, err)
	reviewed := StatusReviewed
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, again.ID, StatusUpdate{Status: &reviewed})
	require.NoError(t, err)

	err = svc.Withdraw(context.Background(), seeker, again.ID)
	assert.ErrorIs(t, err, ErrCannotWithdraw)
	assert.Equal(t, "cannot withdraw processed application", err.Error())
	assert.Contains(t, m.apps, again.ID)

	assert.ErrorIs(t, svc.Withdraw(context.Background(), uuid.New(), again.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Withdraw(context.Background(), seeker, uuid.New()), ErrNotFound)
}

func TestUpdateStatusOwnershipAndNotes(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	a, err := svc.Apply(context.Background(), uuid.New(), j.ID, "")
	require.NoError(t, err)

	st := StatusShortlisted
	_, err = svc.UpdateStatus(context.Background(), uuid.New(), a.ID, StatusUpdate{Status: &st})
	assert.ErrorIs(t, err, ErrNotOwner)

	bad := Status("hired")
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &bad})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	notes := "  strong candidate "
	got, err := svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &st, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, StatusShortlisted, got.Status)
	assert.Equal(t, "strong candidate", m.apps[a.ID].EmployerNotes)

	// notes-only update keeps status
	notes = "call on monday"
	got, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, StatusShortlisted, got.Status)
	assert.Equal(t, "call on monday", m.apps[a.ID].EmployerNotes)

	// default table allows going back
	back := StatusPending
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &back})
	assert.NoError(t, err)
}

func TestUpdateStatusHonoursTable(t *testing.T) {
	table, err := ParseTransitions([]byte("transitions:\n  pending: [reviewed, rejected]\n  reviewed: [accepted]\n"))
	require.NoError(t, err)
	m, svc := setup(t, table)
	j := m.addJob(job.StatusActive)
	a, err := svc.Apply(context.Background(), uuid.New(), j.ID, "")
	require.NoError(t, err)

	accepted := StatusAccepted
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &accepted})
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))

	reviewed := StatusReviewed
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &reviewed})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &accepted})
	require.NoError(t, err)

	// accepted has no outgoing edges, but same-status updates stay legal
	notes := "offer sent"
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &accepted, Notes: &notes})
	assert.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), j.EmployerID, a.ID, StatusUpdate{Status: &reviewed})
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestBulkUpdate(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	other := m.addJob(job.StatusActive)
	a1, err := svc.Apply(context.Background(), uuid.New(), j.ID, "")
	require.NoError(t, err)
	a2, err := svc.Apply(context.Background(), uuid.New(), j.ID, "")
	require.NoError(t, err)
	foreign, err := svc.Apply(context.Background(), uuid.New(), other.ID, "")
	require.NoError(t, err)

	res, err := svc.BulkUpdateStatus(context.Background(), j.EmployerID, []uuid.UUID{a1.ID, a2.ID, a1.ID, foreign.ID}, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Contains(t, res.Failed, foreign.ID.String())
	assert.Equal(t, StatusRejected, m.apps[a1.ID].Status)
	assert.Equal(t, StatusPending, m.apps[foreign.ID].Status)

	_, err = svc.BulkUpdateStatus(context.Background(), j.EmployerID, nil, StatusRejected)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	_, err = svc.BulkUpdateStatus(context.Background(), j.EmployerID, []uuid.UUID{a1.ID}, "nope")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	tooMany := make([]uuid.UUID, MaxBulk+1)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}
	_, err = svc.BulkUpdateStatus(context.Background(), j.EmployerID, tooMany, StatusRejected)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	_, err = svc.BulkUpdateStatus(context.Background(), j.EmployerID, tooMany[:MaxBulk], StatusRejected)
	assert.NoError(t, err)
}

func TestListings(t *testing.T) {
	m, svc := setup(t, nil)
	j := m.addJob(job.StatusActive)
	seeker := uuid.New()
	a, err := svc.Apply(context.Background(), seeker, j.ID, "")
	require.NoError(t, err)

	items, total, err := svc.ListForSeeker(context.Background(), seeker, Filter{Status: "bogus"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, a.ID, items[0].ID)

	_, _, err = svc.ListForJob(context.Background(), uuid.New(), j.ID, Filter{}, 1, 10)
	assert.ErrorIs(t, err, job.ErrNotOwner)

	_, total, err = svc.ListForJob(context.Background(), j.EmployerID, j.ID, Filter{Status: StatusAccepted}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	_, err = svc.ForSeeker(context.Background(), uuid.New(), a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := svc.ForEmployer(context.Background(), j.EmployerID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, seeker, got.ApplicantID)
}

func TestTransitionsTable(t *testing.T) {
	def := DefaultTransitions()
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			assert.True(t, def.Allowed(from, to))
		}
	}
	assert.Len(t, def.Next(StatusPending), 5)

	_, err := ParseTransitions([]byte("transitions:\n  pending: [hired]\n"))
	assert.Error(t, err)
	_, err = ParseTransitions([]byte("transitions: {}\n"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "transitions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transitions:\n  pending: [reviewed]\n"), 0o600))
	table, err := LoadTransitions(path)
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusReviewed}, table.Next(StatusPending))
	assert.False(t, table.Allowed(StatusReviewed, StatusPending))

	table, err = LoadTransitions("")
	require.NoError(t, err)
	assert.True(t, table.Allowed(StatusAccepted, StatusPending))
}
