package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/api/http/handlers"
	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/export"
	"github.com/artem13815/jobboard/pkg/health"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/meta"
	"github.com/artem13815/jobboard/pkg/profile"
	"github.com/artem13815/jobboard/pkg/savedjob"
	"github.com/artem13815/jobboard/pkg/security/jwt"
	"github.com/artem13815/jobboard/pkg/stats"
)

const (
	secret = "router-test-secret"
	issuer = "jobboard-test"
)

// Stubs embed the interface; methods a test does not override panic if called.

type stubAuth struct {
	auth.AuthUseCase
	listFilter auth.UserFilter
	listLimit  int
	listOffset int
	inactive   map[uuid.UUID]bool
}

func (s *stubAuth) IsActive(_ context.Context, id uuid.UUID) (bool, error) {
	return !s.inactive[id], nil
}

func (s *stubAuth) ToggleActive(_ context.Context, id uuid.UUID) (auth.User, error) {
	s.inactive[id] = !s.inactive[id]
	return auth.User{ID: id, IsActive: !s.inactive[id]}, nil
}

func (s *stubAuth) List(_ context.Context, f auth.UserFilter, limit, offset int) ([]auth.User, int, error) {
	s.listFilter, s.listLimit, s.listOffset = f, limit, offset
	return []auth.User{{ID: uuid.New(), Email: "a@example.com"}}, 21, nil
}

type stubJobs struct {
	job.UseCase
	criteria job.SearchCriteria
	viewer   job.Viewer
}

func (s *stubJobs) Search(_ context.Context, c job.SearchCriteria, page, limit int) (job.Page, error) {
	s.criteria = c
	return job.Page{Items: []job.Job{}, Page: page, Limit: limit}, nil
}

func (s *stubJobs) Detail(_ context.Context, id uuid.UUID, v job.Viewer) (job.Detail, error) {
	s.viewer = v
	return job.Detail{Job: job.Job{ID: id}}, nil
}

type stubApps struct {
	application.UseCase
	applyErr    error
	withdrawErr error
	bulkIDs     []uuid.UUID
	updatedID   uuid.UUID
}

func (s *stubApps) Apply(_ context.Context, seekerID, jobID uuid.UUID, cover string) (application.Application, error) {
	if s.applyErr != nil {
		return application.Application{}, s.applyErr
	}
	return application.Application{ID: uuid.New(), JobID: jobID, ApplicantID: seekerID, CoverLetter: cover, Status: application.StatusPending}, nil
}

func (s *stubApps) Withdraw(context.Context, uuid.UUID, uuid.UUID) error { return s.withdrawErr }

func (s *stubApps) BulkUpdateStatus(_ context.Context, _ uuid.UUID, ids []uuid.UUID, _ application.Status) (application.BulkResult, error) {
	s.bulkIDs = ids
	return application.BulkResult{Updated: len(ids)}, nil
}

func (s *stubApps) UpdateStatus(_ context.Context, _ uuid.UUID, id uuid.UUID, _ application.StatusUpdate) (application.Application, error) {
	s.updatedID = id
	return application.Application{ID: id}, nil
}

type stubSaved struct{ savedjob.UseCase }

func (stubSaved) Toggle(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return true, nil }

type stubProfiles struct {
	profile.UseCase
	seeker *profile.JobSeekerProfile
}

func (s *stubProfiles) Seeker(_ context.Context, id uuid.UUID) (*profile.JobSeekerProfile, error) {
	if s.seeker != nil {
		return s.seeker, nil
	}
	return &profile.JobSeekerProfile{UserID: id}, nil
}

func (s *stubProfiles) PublicSeeker(_ context.Context, viewer auth.Identity, id uuid.UUID) (*profile.JobSeekerProfile, error) {
	if !profile.CanView(profile.VisibilityEmployersOnly, viewer, id) {
		return nil, profile.ErrHidden
	}
	return &profile.JobSeekerProfile{UserID: id}, nil
}

type stubStats struct{ stats.UseCase }

func (stubStats) Dashboard(_ context.Context, days int) (stats.Dashboard, error) {
	return stats.Dashboard{Days: days}, nil
}

type stubExport struct{}

func (stubExport) WriteUsers(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "ID,Username,Email,User Type,Date Joined,Is Active\n")
	return err
}

func (stubExport) WriteJobs(context.Context, io.Writer) error { return nil }

var _ export.UseCase = stubExport{}

type fixture struct {
	app      *fiber.App
	auth     *stubAuth
	jobs     *stubJobs
	apps     *stubApps
	profiles *stubProfiles
}

func newFixture() *fixture {
	f := &fixture{auth: &stubAuth{inactive: map[uuid.UUID]bool{}}, jobs: &stubJobs{}, apps: &stubApps{}, profiles: &stubProfiles{}}
	st := stubStats{}
	app := fiber.New()
	Register(app, Handlers{
		Auth:     handlers.NewAuthHandler(f.auth),
		Health:   handlers.NewHealthHandler(health.NewService()),
		Meta:     handlers.NewMetaHandler(meta.NewSite("", "")),
		Jobs:     handlers.NewJobHandler(f.jobs, f.apps, stubSaved{}, f.profiles),
		Profile:  handlers.NewProfileHandler(f.auth, f.profiles, 1<<20),
		Seeker:   handlers.NewSeekerHandler(f.profiles, f.apps, stubSaved{}, st),
		Employer: handlers.NewEmployerHandler(f.jobs, f.apps, st),
		Admin:    handlers.NewAdminHandler(f.auth, f.profiles, f.jobs, st, stubExport{}, 30),
	}, jwt.NewVerifier(secret, issuer, nil).WithAccounts(f.auth))
	f.app = app
	return f
}

func token(t *testing.T, role auth.Role) (string, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	tok, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate(context.Background(), auth.User{ID: id, Role: role})
	require.NoError(t, err)
	return tok, id
}

func (f *fixture) do(t *testing.T, method, path, tok string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, out
}

func TestSearchParsesQuery(t *testing.T) {
	f := newFixture()
	resp, body := f.do(t, nethttp.MethodGet, "/api/v1/jobs?search=go&job_type=contract&salary_min=abc&is_remote=true&page=2&limit=500", "", nil)

	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "go", f.jobs.criteria.Keyword)
	assert.Equal(t, job.TypeContract, f.jobs.criteria.Type)
	assert.Nil(t, f.jobs.criteria.SalaryMin)
	assert.True(t, f.jobs.criteria.RemoteOnly)
	assert.JSONEq(t, `{"items":[],"total":0,"page":2,"limit":100}`, string(body))
}

func TestRoleGates(t *testing.T) {
	f := newFixture()
	seeker, _ := token(t, auth.RoleJobSeeker)
	employer, _ := token(t, auth.RoleEmployer)
	admin, _ := token(t, auth.RoleAdmin)

	cases := []struct {
		method, path, tok string
		status            int
	}{
		{nethttp.MethodGet, "/api/v1/admin/dashboard", "", nethttp.StatusUnauthorized},
		{nethttp.MethodGet, "/api/v1/admin/dashboard", seeker, nethttp.StatusForbidden},
		{nethttp.MethodGet, "/api/v1/admin/dashboard", employer, nethttp.StatusForbidden},
		{nethttp.MethodGet, "/api/v1/admin/dashboard", admin, nethttp.StatusOK},
		{nethttp.MethodPost, "/api/v1/jobs/" + uuid.NewString() + "/apply", employer, nethttp.StatusForbidden},
		{nethttp.MethodPost, "/api/v1/jobs/" + uuid.NewString() + "/save", seeker, nethttp.StatusOK},
		{nethttp.MethodGet, "/api/v1/seeker/saved", employer, nethttp.StatusForbidden},
		{nethttp.MethodGet, "/api/v1/employer/dashboard", seeker, nethttp.StatusForbidden},
		{nethttp.MethodPut, "/api/v1/profile/employer", seeker, nethttp.StatusForbidden},
	}
	for _, tc := range cases {
		resp, body := f.do(t, tc.method, tc.path, tc.tok, nil)
		assert.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.method, tc.path)
		if tc.status == nethttp.StatusForbidden {
			assert.JSONEq(t, `{"message":"access denied"}`, string(body))
		}
	}
}

func TestDashboardDaysWindow(t *testing.T) {
	f := newFixture()
	admin, _ := token(t, auth.RoleAdmin)

	_, body := f.do(t, nethttp.MethodGet, "/api/v1/admin/dashboard?days=abc", admin, nil)
	var d stats.Dashboard
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, 30, d.Days)

	_, body = f.do(t, nethttp.MethodGet, "/api/v1/admin/dashboard?days=9999", admin, nil)
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, stats.MaxDays, d.Days)
}

func TestApplyErrors(t *testing.T) {
	f := newFixture()
	seeker, seekerID := token(t, auth.RoleJobSeeker)
	jobID := uuid.New()

	resp, body := f.do(t, nethttp.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", seeker, map[string]string{"coverLetter": "hi"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	var a application.Application
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Equal(t, seekerID, a.ApplicantID)
	assert.Equal(t, "hi", a.CoverLetter)

	f.apps.applyErr = application.ErrAlreadyApplied
	resp, body = f.do(t, nethttp.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", seeker, nil)
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"message":"you have already applied for this job"}`, string(body))

	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/jobs/not-a-uuid/apply", seeker, nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestWithdrawProcessed(t *testing.T) {
	f := newFixture()
	f.apps.withdrawErr = application.ErrCannotWithdraw
	seeker, _ := token(t, auth.RoleJobSeeker)

	resp, body := f.do(t, nethttp.MethodDelete, "/api/v1/seeker/applications/"+uuid.NewString(), seeker, nil)
	assert.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"message":"cannot withdraw processed application"}`, string(body))
}

func TestDetailViewer(t *testing.T) {
	f := newFixture()
	f.profiles.seeker = &profile.JobSeekerProfile{Skills: []string{"Go"}}
	id := uuid.NewString()

	resp, _ := f.do(t, nethttp.MethodGet, "/api/v1/jobs/"+id, "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, uuid.Nil, f.jobs.viewer.SeekerID)

	seeker, seekerID := token(t, auth.RoleJobSeeker)
	f.do(t, nethttp.MethodGet, "/api/v1/jobs/"+id, seeker, nil)
	assert.Equal(t, seekerID, f.jobs.viewer.SeekerID)
	assert.Equal(t, []string{"Go"}, f.jobs.viewer.Skills)

	employer, _ := token(t, auth.RoleEmployer)
	f.do(t, nethttp.MethodGet, "/api/v1/jobs/"+id, employer, nil)
	assert.Equal(t, uuid.Nil, f.jobs.viewer.SeekerID)
}

func TestPublicSeekerProfileIsNotBehindAuth(t *testing.T) {
	f := newFixture()
	path := "/api/v1/profiles/seekers/" + uuid.NewString()

	resp, _ := f.do(t, nethttp.MethodGet, path, "", nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	employer, _ := token(t, auth.RoleEmployer)
	resp, _ = f.do(t, nethttp.MethodGet, path, employer, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestBulkRouteIsNotAnID(t *testing.T) {
	f := newFixture()
	employer, _ := token(t, auth.RoleEmployer)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	resp, body := f.do(t, nethttp.MethodPost, "/api/v1/employer/applications/bulk", employer, map[string]any{"applicationIds": ids, "status": "reviewed"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, ids, f.apps.bulkIDs)
	assert.JSONEq(t, `{"updated":2}`, string(body))

	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/employer/applications/bulk", employer, map[string]any{"status": "reviewed"})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	f.apps.bulkIDs = nil
	tooMany := make([]uuid.UUID, application.MaxBulk+1)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}
	resp, body = f.do(t, nethttp.MethodPost, "/api/v1/employer/applications/bulk", employer, map[string]any{"applicationIds": tooMany, "status": "reviewed"})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"message":"at most 100 applications can be updated at once"}`, string(body))
	assert.Nil(t, f.apps.bulkIDs)

	one := uuid.New()
	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/employer/applications/"+one.String(), employer, map[string]any{"notes": "call back"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, one, f.apps.updatedID)
}

func TestAdminUsersFilter(t *testing.T) {
	f := newFixture()
	admin, _ := token(t, auth.RoleAdmin)

	resp, body := f.do(t, nethttp.MethodGet, "/api/v1/admin/users?role=employer&active=false&search=%20acme%20&page=3&limit=5", admin, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.RoleEmployer, f.auth.listFilter.Role)
	require.NotNil(t, f.auth.listFilter.Active)
	assert.False(t, *f.auth.listFilter.Active)
	assert.Equal(t, "acme", f.auth.listFilter.Search)
	assert.Equal(t, 5, f.auth.listLimit)
	assert.Equal(t, 10, f.auth.listOffset)

	var page struct {
		Total int `json:"total"`
		Pages int `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 5, page.Pages)

	f.do(t, nethttp.MethodGet, "/api/v1/admin/users?role=superuser&active=maybe", admin, nil)
	assert.Equal(t, auth.Role(""), f.auth.listFilter.Role)
	assert.Nil(t, f.auth.listFilter.Active)
}

func TestExportUsersCSV(t *testing.T) {
	f := newFixture()
	admin, _ := token(t, auth.RoleAdmin)

	resp, body := f.do(t, nethttp.MethodGet, "/api/v1/admin/export/users", admin, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="users_export.csv"`)
	assert.Equal(t, "ID,Username,Email,User Type,Date Joined,Is Active\n", string(body))
}

func TestMetaAndHealth(t *testing.T) {
	f := newFixture()

	resp, body := f.do(t, nethttp.MethodGet, "/api/v1/meta", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var info meta.Info
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, meta.DefaultTitle, info.Site.Title)
	assert.NotEmpty(t, info.Choices.JobTypes)

	resp, _ = f.do(t, nethttp.MethodGet, "/api/v1/ready", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestDeactivationLocksOutIssuedToken(t *testing.T) {
	f := newFixture()
	admin, adminID := token(t, auth.RoleAdmin)
	employer, employerID := token(t, auth.RoleEmployer)
	path := "/api/v1/employer/applications/" + uuid.NewString()
	notes := map[string]string{"notes": "call back"}

	resp, _ := f.do(t, nethttp.MethodPost, path, employer, notes)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/admin/users/"+employerID.String()+"/toggle-active", admin, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, body := f.do(t, nethttp.MethodPost, path, employer, notes)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"account is deactivated"}`, string(body))

	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/admin/users/"+adminID.String()+"/toggle-active", admin, nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp, _ = f.do(t, nethttp.MethodPost, "/api/v1/admin/users/"+employerID.String()+"/toggle-active", admin, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp, _ = f.do(t, nethttp.MethodPost, path, employer, notes)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
