package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/job"
)

const (
	maxCoverLetter = 10_000
	maxNotes       = 5_000

	// MaxBulk caps the ids accepted by one bulk status update.
	MaxBulk = 100
)

var (
	ErrNotFound             = apperr.NotFound("application not found")
	ErrAlreadyApplied       = apperr.Duplicate("you have already applied for this job")
	ErrJobNotActive         = apperr.State("this job is not accepting applications")
	ErrCannotWithdraw       = apperr.State("cannot withdraw processed application")
	ErrTransitionNotAllowed = apperr.State("this status change is not allowed")
	ErrConcurrentUpdate     = apperr.State("the application was changed by someone else, reload and try again")
	ErrNotOwner             = apperr.Permission("you can only manage applications to your own jobs")
)

// Repository persists applications. Create must insert only while the job is active
// (returning ErrJobNotActive otherwise) and report the unique (job, applicant) pair as
// ErrAlreadyApplied.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	// DeletePending removes the application only while it is pending.
	DeletePending(ctx context.Context, id, applicantID uuid.UUID) (bool, error)
	// UpdateStatus applies the change only if the stored status is still from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, notes string, at time.Time) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, f Filter, limit, offset int) ([]Application, int, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, f Filter, limit, offset int) ([]Application, int, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, f Filter, limit, offset int) ([]Application, int, error)
}

// JobReader is the part of the job store the state machine needs.
type JobReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
}

// StatusUpdate is an employer's change to one application. A nil Status keeps the
// current status; a nil Notes keeps the current notes.
type StatusUpdate struct {
	Status *Status `json:"status"`
	Notes  *string `json:"notes"`
}

type UseCase interface {
	Apply(ctx context.Context, seekerID, jobID uuid.UUID, coverLetter string) (Application, error)
	Withdraw(ctx context.Context, seekerID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, employerID, id uuid.UUID, upd StatusUpdate) (Application, error)
	BulkUpdateStatus(ctx context.Context, employerID uuid.UUID, ids []uuid.UUID, status Status) (BulkResult, error)

	ForSeeker(ctx context.Context, seekerID, id uuid.UUID) (Application, error)
	ForEmployer(ctx context.Context, employerID, id uuid.UUID) (Application, error)
	ListForSeeker(ctx context.Context, seekerID uuid.UUID, f Filter, page, limit int) ([]Application, int, error)
	ListForJob(ctx context.Context, employerID, jobID uuid.UUID, f Filter, page, limit int) ([]Application, int, error)
	ListForEmployer(ctx context.Context, employerID uuid.UUID, f Filter, page, limit int) ([]Application, int, error)
	Transitions() Transitions
}

type service struct {
	repo  Repository
	jobs  JobReader
	table Transitions
	now   func() time.Time
}

// NewService returns the application state machine. A nil table means DefaultTransitions.
func NewService(repo Repository, jobs JobReader, table Transitions) UseCase {
	if table == nil {
		table = DefaultTransitions()
	}
	return &service{repo: repo, jobs: jobs, table: table, now: time.Now}
}

func (s *service) Transitions() Transitions { return s.table }

func (s *service) Apply(ctx context.Context, seekerID, jobID uuid.UUID, coverLetter string) (Application, error) {
	coverLetter = strings.TrimSpace(coverLetter)
	if len(coverLetter) > maxCoverLetter {
		return Application{}, apperr.Validation("cover letter is too long")
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	if j.Status != job.StatusActive {
		return Application{}, ErrJobNotActive
	}
	now := s.now().UTC()
	a := Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: seekerID,
		CoverLetter: coverLetter,
		Status:      StatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
		EmployerID:  j.EmployerID,
		JobTitle:    j.Title,
		CompanyName: j.CompanyName,
	}
	// The store re-checks the job status and the (job, applicant) pair atomically.
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) Withdraw(ctx context.Context, seekerID, id uuid.UUID) error {
	deleted, err := s.repo.DeletePending(ctx, id, seekerID)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ApplicantID != seekerID {
		return ErrNotFound
	}
	return ErrCannotWithdraw
}

func (s *service) UpdateStatus(ctx context.Context, employerID, id uuid.UUID, upd StatusUpdate) (Application, error) {
	a, err := s.ForEmployer(ctx, employerID, id)
	if err != nil {
		return Application{}, err
	}
	to := a.Status
	if upd.Status != nil {
		to = *upd.Status
	}
	if !to.Valid() {
		return Application{}, apperr.Validation("invalid application status")
	}
	notes := a.EmployerNotes
	if upd.Notes != nil {
		notes = strings.TrimSpace(*upd.Notes)
	}
	if len(notes) > maxNotes {
		return Application{}, apperr.Validation("notes are too long")
	}
	if !s.table.Allowed(a.Status, to) {
		return Application{}, fmt.Errorf("%w: %s to %s", ErrTransitionNotAllowed, a.Status, to)
	}
	now := s.now().UTC()
	ok, err := s.repo.UpdateStatus(ctx, id, a.Status, to, notes, now)
	if err != nil {
		return Application{}, err
	}
	if !ok {
		return Application{}, ErrConcurrentUpdate
	}
	a.Status, a.EmployerNotes, a.UpdatedAt = to, notes, now
	return a, nil
}

// BulkUpdateStatus applies one status to many applications; each id is checked on its own
// and failures do not stop the rest.
func (s *service) BulkUpdateStatus(ctx context.Context, employerID uuid.UUID, ids []uuid.UUID, status Status) (BulkResult, error) {
	if !status.Valid() {
		return BulkResult{}, apperr.Validation("invalid application status")
	}
	if len(ids) == 0 {
		return BulkResult{}, apperr.Validation("no applications selected")
	}
	if len(ids) > MaxBulk {
		return BulkResult{}, apperr.Validation(fmt.Sprintf("at most %d applications can be updated at once", MaxBulk))
	}
	res := BulkResult{Failed: map[string]string{}}
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		st := status
		if _, err := s.UpdateStatus(ctx, employerID, id, StatusUpdate{Status: &st}); err != nil {
			if apperr.KindOf(err) == apperr.KindUnknown {
				return res, err
			}
			res.Failed[id.String()] = err.Error()
			continue
		}
		res.Updated++
	}
	if len(res.Failed) == 0 {
		res.Failed = nil
	}
	return res, nil
}

func (s *service) ForSeeker(ctx context.Context, seekerID, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.ApplicantID != seekerID {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (s *service) ForEmployer(ctx context.Context, employerID, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.EmployerID != employerID {
		return Application{}, ErrNotOwner
	}
	return a, nil
}

func (s *service) ListForSeeker(ctx context.Context, seekerID uuid.UUID, f Filter, page, limit int) ([]Application, int, error) {
	f = cleanFilter(f)
	_, limit, offset := job.NormalizePage(page, limit)
	return s.repo.ListByApplicant(ctx, seekerID, f, limit, offset)
}

func (s *service) ListForJob(ctx context.Context, employerID, jobID uuid.UUID, f Filter, page, limit int) ([]Application, int, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if j.EmployerID != employerID {
		return nil, 0, job.ErrNotOwner
	}
	f = cleanFilter(f)
	_, limit, offset := job.NormalizePage(page, limit)
	return s.repo.ListByJob(ctx, jobID, f, limit, offset)
}

func (s *service) ListForEmployer(ctx context.Context, employerID uuid.UUID, f Filter, page, limit int) ([]Application, int, error) {
	f = cleanFilter(f)
	_, limit, offset := job.NormalizePage(page, limit)
	return s.repo.ListByEmployer(ctx, employerID, f, limit, offset)
}

func cleanFilter(f Filter) Filter {
	if !f.Status.Valid() {
		f.Status = ""
	}
	return f
}
