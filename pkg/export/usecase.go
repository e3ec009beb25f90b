// Package export writes admin CSV reports of users and jobs.
package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
)

const (
	UsersFilename = "users_export.csv"
	JobsFilename  = "jobs_export.csv"

	noCategory = "N/A"
	dateLayout = "2006-01-02"
)

var (
	UserHeader = []string{"ID", "Username", "Email", "User Type", "Date Joined", "Is Active"}
	JobHeader  = []string{"ID", "Title", "Company", "Category", "Status", "Created Date", "Applications Count"}
)

// UserSource and JobSource yield every row of a report in a stable order.
type UserSource interface {
	AllUsers(ctx context.Context) ([]auth.User, error)
}

type JobSource interface {
	AllJobs(ctx context.Context) ([]job.Listing, error)
}

type UseCase interface {
	WriteUsers(ctx context.Context, w io.Writer) error
	WriteJobs(ctx context.Context, w io.Writer) error
}

type service struct {
	users UserSource
	jobs  JobSource
}

func NewService(users UserSource, jobs JobSource) UseCase {
	return &service{users: users, jobs: jobs}
}

func (s *service) WriteUsers(ctx context.Context, w io.Writer) error {
	users, err := s.users.AllUsers(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(UserHeader); err != nil {
		return err
	}
	for _, u := range users {
		row := []string{
			u.ID.String(),
			u.Username,
			u.Email,
			string(u.Role),
			u.CreatedAt.UTC().Format(time.RFC3339),
			formatBool(u.IsActive),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *service) WriteJobs(ctx context.Context, w io.Writer) error {
	jobs, err := s.jobs.AllJobs(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(JobHeader); err != nil {
		return err
	}
	for _, j := range jobs {
		category := j.CategoryName
		if j.CategoryID == nil || category == "" {
			category = noCategory
		}
		row := []string{
			j.ID.String(),
			j.Title,
			j.CompanyName,
			category,
			string(j.Status),
			j.CreatedAt.UTC().Format(dateLayout),
			strconv.Itoa(j.ApplicationsCount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
