package savedjob

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/job"
)

// Saved хранит вакансию, сохранённую соискателем.
type Saved struct {
	ID      uuid.UUID `json:"id"`
	Job     job.Job   `json:"job"`
	SavedAt time.Time `json:"savedAt"`
}

// Repository stores bookmarks. The (job, seeker) pair is unique: Delete reports whether a
// row was removed and Insert ignores an existing pair.
type Repository interface {
	Delete(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	Insert(ctx context.Context, id, jobID, seekerID uuid.UUID, at time.Time) error
	List(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]Saved, int, error)
	Count(ctx context.Context, seekerID uuid.UUID) (int, error)
}

// JobReader нужен только чтобы проверить, что вакансия существует.
type JobReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
}

type UseCase interface {
	// Toggle removes the bookmark if present, otherwise adds it, and returns the new state.
	Toggle(ctx context.Context, seekerID, jobID uuid.UUID) (bool, error)
	List(ctx context.Context, seekerID uuid.UUID, page, limit int) ([]Saved, int, error)
}

type service struct {
	repo Repository
	jobs JobReader
	now  func() time.Time
}

func NewService(repo Repository, jobs JobReader) UseCase {
	return &service{repo: repo, jobs: jobs, now: time.Now}
}

func (s *service) Toggle(ctx context.Context, seekerID, jobID uuid.UUID) (bool, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return false, err
	}
	removed, err := s.repo.Delete(ctx, jobID, seekerID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if err := s.repo.Insert(ctx, uuid.New(), jobID, seekerID, s.now().UTC()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) List(ctx context.Context, seekerID uuid.UUID, page, limit int) ([]Saved, int, error) {
	_, limit, offset := job.NormalizePage(page, limit)
	items, total, err := s.repo.List(ctx, seekerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Saved{}
	}
	return items, total, nil
}
