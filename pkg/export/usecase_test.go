package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
)

type stubSource struct {
	users []auth.User
	jobs  []job.Listing
	err   error
}

func (s stubSource) AllUsers(context.Context) ([]auth.User, error) { return s.users, s.err }
func (s stubSource) AllJobs(context.Context) ([]job.Listing, error) { return s.jobs, s.err }

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteUsers(t *testing.T) {
	id := uuid.New()
	joined := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	src := stubSource{users: []auth.User{
		{ID: id, Username: "ada", Email: "ada@example.com", Role: auth.RoleJobSeeker, IsActive: true, CreatedAt: joined},
		{ID: uuid.New(), Username: "acme, inc", Email: "hr@acme.io", Role: auth.RoleEmployer, CreatedAt: joined},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewService(src, src).WriteUsers(context.Background(), &buf))
	rows := readCSV(t, &buf)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Username", "Email", "User Type", "Date Joined", "Is Active"}, rows[0])
	assert.Equal(t, []string{id.String(), "ada", "ada@example.com", "job_seeker", "2024-02-01T09:30:00Z", "True"}, rows[1])
	assert.Equal(t, "acme, inc", rows[2][1])
	assert.Equal(t, "False", rows[2][5])
}

func TestWriteJobs(t *testing.T) {
	cat := uuid.New()
	created := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	src := stubSource{jobs: []job.Listing{
		{Job: job.Job{ID: uuid.New(), Title: "Go dev", CompanyName: "Acme", CategoryID: &cat, CategoryName: "Engineering", Status: job.StatusActive, CreatedAt: created}, ApplicationsCount: 4},
		{Job: job.Job{ID: uuid.New(), Title: "Intern", CompanyName: "Acme", Status: job.StatusDraft, CreatedAt: created}},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewService(src, src).WriteJobs(context.Background(), &buf))
	rows := readCSV(t, &buf)

	require.Len(t, rows, 3)
	assert.Equal(t, JobHeader, rows[0])
	assert.Equal(t, []string{"Go dev", "Acme", "Engineering", "active", "2024-03-05", "4"}, rows[1][1:])
	assert.Equal(t, "N/A", rows[2][3])
	assert.Equal(t, "0", rows[2][6])
}

func TestWriteEmptyReportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewService(stubSource{}, stubSource{}).WriteJobs(context.Background(), &buf))
	assert.Equal(t, [][]string{JobHeader}, readCSV(t, &buf))
}

func TestWriteSourceError(t *testing.T) {
	var buf bytes.Buffer
	err := NewService(stubSource{err: errors.New("db down")}, stubSource{}).WriteUsers(context.Background(), &buf)
	assert.EqualError(t, err, "db down")
	assert.Zero(t, buf.Len())
}
