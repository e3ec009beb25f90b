package job

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/nlp"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	relatedLimit    = 3
	defaultCurrency = "USD"
	maxTitleLen     = 200
	maxCategoryName = 100

	// MaxSalary is the largest amount the INTEGER salary columns hold.
	MaxSalary = math.MaxInt32
)

var (
	ErrNotFound         = apperr.NotFound("job not found")
	ErrNotOwner         = apperr.Permission("you can only manage your own jobs")
	ErrCategoryNotFound = apperr.NotFound("category not found")
	ErrCategoryExists   = apperr.Duplicate("a category with this name already exists")
)

// AdminFilter narrows the admin job list. Zero values mean "any".
type AdminFilter struct {
	Status     Status
	CategoryID *uuid.UUID
	Search     string
}

// Repository persists jobs and categories.
type Repository interface {
	Create(ctx context.Context, j Job) error
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Search(ctx context.Context, q Query, limit, offset int) ([]Job, int, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	ViewerFlags(ctx context.Context, jobID, seekerID uuid.UUID) (applied, saved bool, err error)
	Related(ctx context.Context, j Job, limit int) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]Listing, int, error)
	ListAll(ctx context.Context, f AdminFilter, limit, offset int) ([]Listing, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c Category) error
}

// Input is what an employer submits when creating or replacing a job.
type Input struct {
	CategoryID       *uuid.UUID      `json:"categoryId"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements"`
	Responsibilities string          `json:"responsibilities"`
	Type             Type            `json:"jobType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	Location         string          `json:"location"`
	IsRemote         bool            `json:"isRemote"`
	SalaryMin        *int            `json:"salaryMin"`
	SalaryMax        *int            `json:"salaryMax"`
	SalaryCurrency   string          `json:"salaryCurrency"`
	RequiredSkills   []string        `json:"requiredSkills"`
	PreferredSkills  []string        `json:"preferredSkills"`
	Status           Status          `json:"status"`
	Deadline         *time.Time      `json:"deadline"`
}

// Viewer is the caller of a detail page. A zero SeekerID is anyone who is not a job seeker.
type Viewer struct {
	SeekerID   uuid.UUID
	Skills     []string
	ResumeText string
}

// UseCase groups job search, job management and categories.
type UseCase interface {
	Search(ctx context.Context, c SearchCriteria, page, limit int) (Page, error)
	Detail(ctx context.Context, id uuid.UUID, v Viewer) (Detail, error)
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	Recommend(ctx context.Context, skills []string, limit int) ([]Job, error)

	Create(ctx context.Context, employerID uuid.UUID, in Input) (Job, error)
	Update(ctx context.Context, employerID, id uuid.UUID, in Input) (Job, error)
	Delete(ctx context.Context, employerID, id uuid.UUID) error
	ListByEmployer(ctx context.Context, employerID uuid.UUID, page, limit int) ([]Listing, int, error)

	ListAll(ctx context.Context, f AdminFilter, page, limit int) ([]Listing, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (Job, error)

	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name, description string) (Category, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase { return &service{repo: repo, now: time.Now} }

// NormalizePage clamps page/limit and returns the matching row offset.
func NormalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit, (page - 1) * limit
}

func (s *service) Search(ctx context.Context, c SearchCriteria, page, limit int) (Page, error) {
	page, limit, offset := NormalizePage(page, limit)
	items, total, err := s.repo.Search(ctx, BuildSearch(c), limit, offset)
	if err != nil {
		return Page{}, err
	}
	if items == nil {
		items = []Job{}
	}
	return Page{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *service) Detail(ctx context.Context, id uuid.UUID, v Viewer) (Detail, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	if j.Status != StatusActive {
		return Detail{}, ErrNotFound
	}
	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	j.ViewsCount = views

	d := Detail{Job: j, Related: []Job{}}
	if v.SeekerID != uuid.Nil {
		if d.HasApplied, d.IsSaved, err = s.repo.ViewerFlags(ctx, id, v.SeekerID); err != nil {
			return Detail{}, err
		}
		have := append([]string{}, v.Skills...)
		have = append(have, nlp.SkillsInText(v.ResumeText, j.RequiredSkills)...)
		d.MatchedSkills, d.MissingSkills = nlp.MatchSkills(j.RequiredSkills, have)
	}
	if j.CategoryID != nil {
		related, err := s.repo.Related(ctx, j, relatedLimit)
		if err != nil {
			return Detail{}, err
		}
		if related != nil {
			d.Related = related
		}
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Recommend(ctx context.Context, skills []string, limit int) ([]Job, error) {
	q, ok := BuildRecommend(skills)
	if !ok {
		return []Job{}, nil
	}
	_, limit, _ = NormalizePage(1, limit)
	items, _, err := s.repo.Search(ctx, q, limit, 0)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Job{}
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, employerID uuid.UUID, in Input) (Job, error) {
	j := Job{ID: uuid.New(), EmployerID: employerID}
	if err := apply(&j, in, true); err != nil {
		return Job{}, err
	}
	now := s.now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Update(ctx context.Context, employerID, id uuid.UUID, in Input) (Job, error) {
	j, err := s.owned(ctx, employerID, id)
	if err != nil {
		return Job{}, err
	}
	if err := apply(&j, in, false); err != nil {
		return Job{}, err
	}
	j.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) Delete(ctx context.Context, employerID, id uuid.UUID) error {
	if _, err := s.owned(ctx, employerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) owned(ctx context.Context, employerID, id uuid.UUID) (Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	if j.EmployerID != employerID {
		return Job{}, ErrNotOwner
	}
	return j, nil
}

func (s *service) ListByEmployer(ctx context.Context, employerID uuid.UUID, page, limit int) ([]Listing, int, error) {
	_, limit, offset := NormalizePage(page, limit)
	return s.repo.ListByEmployer(ctx, employerID, limit, offset)
}

func (s *service) ListAll(ctx context.Context, f AdminFilter, page, limit int) ([]Listing, int, error) {
	if f.Status != "" && !f.Status.Valid() {
		f.Status = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	_, limit, offset := NormalizePage(page, limit)
	return s.repo.ListAll(ctx, f, limit, offset)
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (Job, error) {
	if !status.Valid() {
		return Job{}, apperr.Validation("invalid job status")
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return Job{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	cs, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		cs = []Category{}
	}
	return cs, nil
}

func (s *service) CreateCategory(ctx context.Context, name, description string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, apperr.Validation("category name is required")
	}
	if len(name) > maxCategoryName {
		return Category{}, apperr.Validation("category name is too long")
	}
	c := Category{ID: uuid.New(), Name: name, Description: strings.TrimSpace(description), CreatedAt: s.now().UTC()}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// apply validates in and copies it onto j. On create an empty status means draft;
// on update it keeps the current one.
func apply(j *Job, in Input, creating bool) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	switch {
	case in.Title == "":
		return apperr.Validation("title is required")
	case len(in.Title) > maxTitleLen:
		return apperr.Validation("title is too long")
	case in.Description == "":
		return apperr.Validation("description is required")
	case in.Location == "":
		return apperr.Validation("location is required")
	}
	if !in.Type.Valid() {
		return apperr.Validation("invalid job type")
	}
	if !in.ExperienceLevel.Valid() {
		return apperr.Validation("invalid experience level")
	}
	if (in.SalaryMin != nil && *in.SalaryMin < 0) || (in.SalaryMax != nil && *in.SalaryMax < 0) {
		return apperr.Validation("salary cannot be negative")
	}
	if (in.SalaryMin != nil && *in.SalaryMin > MaxSalary) || (in.SalaryMax != nil && *in.SalaryMax > MaxSalary) {
		return apperr.Validation("salary is too large")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return apperr.Validation("minimum salary cannot exceed maximum salary")
	}
	switch {
	case in.Status == "" && creating:
		in.Status = StatusDraft
	case in.Status == "":
		in.Status = j.Status
	case !in.Status.Valid():
		return apperr.Validation("invalid job status")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.SalaryCurrency))
	if currency == "" {
		currency = defaultCurrency
	}

	j.CategoryID = in.CategoryID
	j.Title = in.Title
	j.Description = in.Description
	j.Requirements = strings.TrimSpace(in.Requirements)
	j.Responsibilities = strings.TrimSpace(in.Responsibilities)
	j.Type = in.Type
	j.ExperienceLevel = in.ExperienceLevel
	j.Location = in.Location
	j.IsRemote = in.IsRemote
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.SalaryCurrency = currency
	j.RequiredSkills = nlp.CleanList(in.RequiredSkills)
	j.PreferredSkills = nlp.CleanList(in.PreferredSkills)
	j.Status = in.Status
	j.Deadline = in.Deadline
	return nil
}
