package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/apperr"
)

type fakeRepo struct {
	jobs       map[uuid.UUID]Job
	applied    map[uuid.UUID]bool
	saved      map[uuid.UUID]bool
	related    []Job
	lastQuery  Query
	lastLimit  int
	lastOffset int
	categories []Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{jobs: map[uuid.UUID]Job{}, applied: map[uuid.UUID]bool{}, saved: map[uuid.UUID]bool{}}
}

func (f *fakeRepo) Create(_ context.Context, j Job) error { f.jobs[j.ID] = j; return nil }
func (f *fakeRepo) Update(_ context.Context, j Job) error { f.jobs[j.ID] = j; return nil }
func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (f *fakeRepo) Search(_ context.Context, q Query, limit, offset int) ([]Job, int, error) {
	f.lastQuery, f.lastLimit, f.lastOffset = q, limit, offset
	return nil, 0, nil
}

func (f *fakeRepo) IncrementViews(_ context.Context, id uuid.UUID) (int, error) {
	j := f.jobs[id]
	j.ViewsCount++
	f.jobs[id] = j
	return j.ViewsCount, nil
}

func (f *fakeRepo) ViewerFlags(_ context.Context, jobID, _ uuid.UUID) (bool, bool, error) {
	return f.applied[jobID], f.saved[jobID], nil
}

func (f *fakeRepo) Related(_ context.Context, _ Job, limit int) ([]Job, error) {
	if len(f.related) > limit {
		return f.related[:limit], nil
	}
	return f.related, nil
}

func (f *fakeRepo) ListByEmployer(_ context.Context, _ uuid.UUID, limit, offset int) ([]Listing, int, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return nil, 0, nil
}

func (f *fakeRepo) ListAll(_ context.Context, _ AdminFilter, limit, offset int) ([]Listing, int, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return nil, 0, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id uuid.UUID, st Status) error {
	j, ok := f.jobs[id]
	if !ok {
		return ErrNotFound
	}
	j.Status = st
	f.jobs[id] = j
	return nil
}

func (f *fakeRepo) ListCategories(context.Context) ([]Category, error) { return f.categories, nil }

func (f *fakeRepo) CreateCategory(_ context.Context, c Category) error {
	for _, x := range f.categories {
		if x.Name == c.Name {
			return ErrCategoryExists
		}
	}
	f.categories = append(f.categories, c)
	return nil
}

func validInput() Input {
	return Input{
		Title:           "Backend Engineer",
		Description:     "Build APIs",
		Location:        "Berlin",
		Type:            TypeFullTime,
		ExperienceLevel: ExperienceMid,
		RequiredSkills:  []string{"Go", " SQL ", ""},
	}
}

func TestCreateDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	emp := uuid.New()

	j, err := svc.Create(context.Background(), emp, validInput())
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, j.Status)
	assert.Equal(t, "USD", j.SalaryCurrency)
	assert.Equal(t, emp, j.EmployerID)
	assert.Equal(t, []string{"Go", "SQL"}, j.RequiredSkills)
	assert.Contains(t, repo.jobs, j.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	lo, hi := 90000, 50000
	huge := MaxSalary + 1

	mutations := map[string]func(*Input){
		"no title":       func(in *Input) { in.Title = "  " },
		"no description": func(in *Input) { in.Description = "" },
		"no location":    func(in *Input) { in.Location = "" },
		"bad type":       func(in *Input) { in.Type = "gig" },
		"bad level":      func(in *Input) { in.ExperienceLevel = "guru" },
		"bad status":     func(in *Input) { in.Status = "archived" },
		"salary order":   func(in *Input) { in.SalaryMin, in.SalaryMax = &lo, &hi },
		"salary range":   func(in *Input) { in.SalaryMax = &huge },
	}
	for name, mutate := range mutations {
		in := validInput()
		mutate(&in)
		_, err := svc.Create(context.Background(), uuid.New(), in)
		require.Error(t, err, name)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), name)
	}
}

func TestUpdateAndDeleteRequireOwnership(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	owner := uuid.New()
	j, err := svc.Create(context.Background(), owner, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Hijacked"
	_, err = svc.Update(context.Background(), uuid.New(), j.ID, in)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), j.ID), ErrNotOwner)
	assert.Equal(t, "Backend Engineer", repo.jobs[j.ID].Title)

	in.Title = "Senior Backend Engineer"
	in.Status = StatusActive
	updated, err := svc.Update(context.Background(), owner, j.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, StatusActive, updated.Status)

	// empty status on update keeps the current one
	in.Status = ""
	updated, err = svc.Update(context.Background(), owner, j.ID, in)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, updated.Status)

	require.NoError(t, svc.Delete(context.Background(), owner, j.ID))
	assert.NotContains(t, repo.jobs, j.ID)
}

func TestDetailHidesInactiveJobs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	j, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	_, err = svc.Detail(context.Background(), j.ID, Viewer{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, repo.jobs[j.ID].ViewsCount)
}

func TestDetailCountsViewsAndViewerState(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	cat := uuid.New()
	in := validInput()
	in.Status = StatusActive
	in.CategoryID = &cat
	j, err := svc.Create(context.Background(), uuid.New(), in)
	require.NoError(t, err)
	repo.saved[j.ID] = true
	repo.related = []Job{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}

	d, err := svc.Detail(context.Background(), j.ID, Viewer{})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Job.ViewsCount)
	assert.False(t, d.IsSaved, "anonymous viewers get no flags")
	assert.Len(t, d.Related, 3)

	d, err = svc.Detail(context.Background(), j.ID, Viewer{
		SeekerID:   uuid.New(),
		Skills:     []string{"golang"},
		ResumeText: "Five years of PostgreSQL and some sql tuning",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Job.ViewsCount)
	assert.True(t, d.IsSaved)
	assert.False(t, d.HasApplied)
	assert.Equal(t, []string{"Go", "SQL"}, d.MatchedSkills)
	assert.Empty(t, d.MissingSkills)
}

func TestSearchPaging(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.Search(context.Background(), SearchCriteria{}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Equal(t, 20, repo.lastOffset)
	assert.NotNil(t, p.Items)

	p, err = svc.Search(context.Background(), SearchCriteria{}, -1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
}

func TestRecommendWithoutSkills(t *testing.T) {
	repo := newFakeRepo()
	jobs, err := NewService(repo).Recommend(context.Background(), nil, 5)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Nil(t, repo.lastQuery.Args, "no query should be issued")
}

func TestSetStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	j, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), j.ID, "gone")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	got, err := svc.SetStatus(context.Background(), j.ID, StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, got.Status)
}

func TestCreateCategory(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.CreateCategory(context.Background(), " ", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	c, err := svc.CreateCategory(context.Background(), " Engineering ", "Software")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", c.Name)

	_, err = svc.CreateCategory(context.Background(), "Engineering", "")
	assert.ErrorIs(t, err, ErrCategoryExists)

	cs, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cs, 1)
}
