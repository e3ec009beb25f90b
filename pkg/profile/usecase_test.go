package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/resume"
)

type memRepo struct {
	seekers   map[uuid.UUID]JobSeekerProfile
	employers map[uuid.UUID]EmployerProfile
	creates   int
}

func newMemRepo() *memRepo {
	return &memRepo{seekers: map[uuid.UUID]JobSeekerProfile{}, employers: map[uuid.UUID]EmployerProfile{}}
}

func (m *memRepo) CreateSeeker(_ context.Context, p JobSeekerProfile) error {
	m.creates++
	if _, ok := m.seekers[p.UserID]; !ok {
		m.seekers[p.UserID] = p
	}
	return nil
}

func (m *memRepo) CreateEmployer(_ context.Context, p EmployerProfile) error {
	m.creates++
	if _, ok := m.employers[p.UserID]; !ok {
		m.employers[p.UserID] = p
	}
	return nil
}

func (m *memRepo) GetSeeker(_ context.Context, id uuid.UUID) (JobSeekerProfile, error) {
	p, ok := m.seekers[id]
	if !ok {
		return JobSeekerProfile{}, ErrNotFound
	}
	return p, nil
}

func (m *memRepo) GetEmployer(_ context.Context, id uuid.UUID) (EmployerProfile, error) {
	p, ok := m.employers[id]
	if !ok {
		return EmployerProfile{}, ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdateSeeker(_ context.Context, p JobSeekerProfile) error {
	m.seekers[p.UserID] = p
	return nil
}

func (m *memRepo) UpdateEmployer(_ context.Context, p EmployerProfile) error {
	m.employers[p.UserID] = p
	return nil
}

func (m *memRepo) SetEmployerVerified(_ context.Context, id uuid.UUID, v bool) error {
	p, ok := m.employers[id]
	if !ok {
		return ErrNotFound
	}
	p.IsVerified = v
	m.employers[id] = p
	return nil
}

type stubResumes struct {
	discarded []string
	err       error
	n         int
}

func (s *stubResumes) Ingest(_ context.Context, _ uuid.UUID, filename string, _ []byte) (resume.Document, error) {
	if s.err != nil {
		return resume.Document{}, s.err
	}
	s.n++
	return resume.Document{Path: "resumes/" + string(rune('a'+s.n)) + ".pdf", Filename: filename, Text: "go developer"}, nil
}

func (s *stubResumes) Discard(_ context.Context, path string) error {
	s.discarded = append(s.discarded, path)
	return nil
}

func TestSeekerScoreBounds(t *testing.T) {
	empty := &JobSeekerProfile{}
	c := empty.Completeness()
	assert.Equal(t, 0, c.Score)
	assert.Equal(t, 8, c.Total)
	assert.False(t, c.Complete)
	assert.Len(t, c.Missing, 8)

	six := &JobSeekerProfile{
		FirstName: "Ada", LastName: "Lovelace", Phone: "123", Headline: "Engineer",
		Bio: "Analytical engines", ExperienceLevel: job.ExperienceSenior,
	}
	c = six.Completeness()
	assert.Equal(t, 75, c.Score)
	assert.True(t, c.Complete)
	assert.ElementsMatch(t, []string{"skills", "resume"}, c.Missing)
}

func TestScoreIsMonotonic(t *testing.T) {
	p := &EmployerProfile{}
	steps := []func(){
		func() { p.CompanyName = "Acme" },
		func() { p.Description = "Widgets" },
		func() { p.Industry = "Technology" },
		func() { p.CompanySize = CompanySmall },
		func() { p.ContactPerson = "Wile" },
		func() { p.ContactEmail = "hr@acme.test" },
		func() { p.Website = "https://acme.test" },
		func() { p.Headquarters = "Desert" },
	}
	prev := p.Completeness().Score
	for _, step := range steps {
		step()
		cur := p.Completeness().Score
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, 100)
		prev = cur
	}
	assert.Equal(t, 100, prev)
}

func TestScoreRounds(t *testing.T) {
	// 5/8 = 62.5 and 3/8 = 37.5 both round half away from zero
	items := []checkItem{{"a", true}, {"b", true}, {"c", true}, {"d", true}, {"e", true}, {"f", false}, {"g", false}, {"h", false}}
	assert.Equal(t, 63, score(items).Score)
	assert.False(t, score(items).Complete)
	items = []checkItem{{"a", true}, {"b", true}, {"c", true}, {"d", false}, {"e", false}, {"f", false}, {"g", false}, {"h", false}}
	assert.Equal(t, 38, score(items).Score)
}

func TestHookProvisionsProfileByRole(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	seeker := auth.User{ID: uuid.New(), Role: auth.RoleJobSeeker}
	employer := auth.User{ID: uuid.New(), Role: auth.RoleEmployer}
	admin := auth.User{ID: uuid.New(), Role: auth.RoleAdmin}

	require.NoError(t, svc.AfterUserCreated(context.Background(), seeker))
	require.NoError(t, svc.AfterUserCreated(context.Background(), employer))
	require.NoError(t, svc.AfterUserCreated(context.Background(), admin))

	assert.Contains(t, repo.seekers, seeker.ID)
	assert.Contains(t, repo.employers, employer.ID)
	assert.Len(t, repo.seekers, 1)
	assert.Len(t, repo.employers, 1)
	assert.Equal(t, VisibilityEmployersOnly, repo.seekers[seeker.ID].Visibility)
}

func TestLookupReturnsTaggedVariant(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)

	p, err := svc.Lookup(context.Background(), uuid.New(), auth.RoleJobSeeker)
	require.NoError(t, err)
	_, ok := p.(*JobSeekerProfile)
	assert.True(t, ok)

	p, err = svc.Lookup(context.Background(), uuid.New(), auth.RoleEmployer)
	require.NoError(t, err)
	_, ok = p.(*EmployerProfile)
	assert.True(t, ok)

	p, err = svc.Lookup(context.Background(), uuid.New(), auth.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, p)

	// second access does not create again
	id := uuid.New()
	_, err = svc.Seeker(context.Background(), id)
	require.NoError(t, err)
	before := repo.creates
	_, err = svc.Seeker(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before, repo.creates)
}

func TestUpdateSeekerPersistsCompleteness(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	id := uuid.New()

	p, err := svc.UpdateSeeker(context.Background(), id, SeekerInput{
		FirstName: "Ada", LastName: "Lovelace", Phone: "123", Headline: "Engineer",
		Bio: "Bio", ExperienceLevel: job.ExperienceMid, Skills: []string{"Go", " ", "SQL"},
		DesiredJobTypes: []job.Type{job.TypeFullTime, job.TypeFullTime},
	})
	require.NoError(t, err)
	assert.True(t, p.IsProfileComplete)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.Equal(t, []job.Type{job.TypeFullTime}, p.DesiredJobTypes)
	assert.True(t, repo.seekers[id].IsProfileComplete)
	assert.Equal(t, VisibilityEmployersOnly, p.Visibility)

	p, err = svc.UpdateSeeker(context.Background(), id, SeekerInput{FirstName: "Ada"})
	require.NoError(t, err)
	assert.False(t, p.IsProfileComplete)
	assert.False(t, repo.seekers[id].IsProfileComplete)
}

func TestUpdateValidation(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	lo, hi := 10, 5
	huge, negative := job.MaxSalary+1, -1
	bad := []SeekerInput{
		{DesiredSalaryMax: &huge},
		{DesiredSalaryMin: &negative},
		{ExperienceLevel: "wizard"},
		{Visibility: "friends"},
		{DesiredJobTypes: []job.Type{"gig"}},
		{DesiredSalaryMin: &lo, DesiredSalaryMax: &hi},
		{GitHubURL: "javascript:alert(1)"},
	}
	for i, in := range bad {
		_, err := svc.UpdateSeeker(context.Background(), uuid.New(), in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "case %d", i)
	}

	year := 1500
	badEmp := []EmployerInput{
		{CompanySize: "huge"},
		{ContactEmail: "nope"},
		{Website: "acme"},
		{FoundedYear: &year},
	}
	for i, in := range badEmp {
		_, err := svc.UpdateEmployer(context.Background(), uuid.New(), in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "case %d", i)
	}
}

func TestAttachResumeReplacesPrevious(t *testing.T) {
	repo := newMemRepo()
	res := &stubResumes{}
	svc := NewService(repo, res)
	id := uuid.New()

	p, err := svc.AttachResume(context.Background(), id, "cv.pdf", []byte("x"))
	require.NoError(t, err)
	first := p.ResumePath
	assert.NotEmpty(t, first)
	assert.Equal(t, "go developer", repo.seekers[id].ResumeText)
	assert.Equal(t, 1, p.Completeness().Present)

	p, err = svc.AttachResume(context.Background(), id, "cv2.pdf", []byte("y"))
	require.NoError(t, err)
	assert.NotEqual(t, first, p.ResumePath)
	assert.Equal(t, []string{first}, res.discarded)

	res.err = resume.ErrUnsupportedFormat
	_, err = svc.AttachResume(context.Background(), id, "cv.txt", []byte("z"))
	assert.ErrorIs(t, err, resume.ErrUnsupportedFormat)
}

func TestVisibility(t *testing.T) {
	owner := uuid.New()
	anon := auth.Identity{}
	employer := auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployer}
	seeker := auth.Identity{UserID: uuid.New(), Role: auth.RoleJobSeeker}
	self := auth.Identity{UserID: owner, Role: auth.RoleJobSeeker}

	cases := []struct {
		v      Visibility
		viewer auth.Identity
		want   bool
	}{
		{VisibilityPublic, anon, true},
		{VisibilityPublic, seeker, true},
		{VisibilityEmployersOnly, anon, false},
		{VisibilityEmployersOnly, seeker, false},
		{VisibilityEmployersOnly, employer, true},
		{VisibilityEmployersOnly, self, true},
		{VisibilityPrivate, employer, false},
		{VisibilityPrivate, self, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanView(tc.v, tc.viewer, owner), "%s/%s", tc.v, tc.viewer.Role)
	}
}

func TestPublicSeeker(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	owner := uuid.New()
	repo.seekers[owner] = JobSeekerProfile{UserID: owner, Visibility: VisibilityPrivate}

	_, err := svc.PublicSeeker(context.Background(), auth.Identity{UserID: uuid.New(), Role: auth.RoleEmployer}, owner)
	assert.ErrorIs(t, err, ErrHidden)

	_, err = svc.PublicSeeker(context.Background(), auth.Identity{}, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVerifyEmployer(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	id := uuid.New()
	_, err := svc.Employer(context.Background(), id)
	require.NoError(t, err)

	p, err := svc.VerifyEmployer(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, p.IsVerified)

	_, err = svc.VerifyEmployer(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}
