package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/export"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/profile"
	"github.com/artem13815/jobboard/pkg/stats"
)

// AdminHandler serves platform statistics and moderation.
type AdminHandler struct {
	users       auth.AuthUseCase
	profiles    profile.UseCase
	jobs        job.UseCase
	stats       stats.UseCase
	export      export.UseCase
	defaultDays int
}

func NewAdminHandler(users auth.AuthUseCase, profiles profile.UseCase, jobs job.UseCase, st stats.UseCase, ex export.UseCase, defaultDays int) *AdminHandler {
	return &AdminHandler{users: users, profiles: profiles, jobs: jobs, stats: st, export: ex, defaultDays: defaultDays}
}

// Dashboard is the platform overview for the last ?days days.
// @Summary  Admin dashboard
// @Tags     admin
// @Produce  json
// @Param    days query int false "window length in days (1-365)"
// @Security BearerAuth
// @Success  200 {object} stats.Dashboard
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.stats.Dashboard(c.UserContext(), stats.ParseDays(c.Query("days"), h.defaultDays))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Analytics reports growth, success rate, categories and top employers.
// @Summary  Admin analytics
// @Tags     admin
// @Produce  json
// @Param    days query int false "window length in days (1-365)"
// @Security BearerAuth
// @Success  200 {object} stats.Analytics
// @Router   /admin/analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	a, err := h.stats.Analytics(c.UserContext(), stats.ParseDays(c.Query("days"), h.defaultDays))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// QuickStats counts today's activity.
// @Summary  Quick statistics
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} stats.QuickStats
// @Router   /admin/quick-stats [get]
func (h *AdminHandler) QuickStats(c *fiber.Ctx) error {
	q, err := h.stats.Quick(c.UserContext())
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, q)
}

// Users lists accounts.
// @Summary  List users
// @Tags     admin
// @Produce  json
// @Param    role   query string false "job_seeker, employer or admin"
// @Param    search query string false "username or email substring"
// @Param    active query bool   false "active flag"
// @Param    page   query int    false "page number"
// @Param    limit  query int    false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[auth.User]
// @Router   /admin/users [get]
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	f := auth.UserFilter{Search: strings.TrimSpace(c.Query("search"))}
	if r := auth.Role(c.Query("role")); r.Valid() {
		f.Role = r
	}
	if v, err := strconv.ParseBool(c.Query("active")); err == nil {
		f.Active = &v
	}
	page, limit := parsePage(c)
	_, _, offset := job.NormalizePage(page, limit)
	items, total, err := h.users.List(c.UserContext(), f, limit, offset)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// ToggleActive activates or deactivates an account.
// @Summary  Toggle user active flag
// @Tags     admin
// @Produce  json
// @Param    id path string true "user id"
// @Security BearerAuth
// @Success  200 {object} auth.User
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /admin/users/{id}/toggle-active [post]
func (h *AdminHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	// себя деактивировать нельзя, иначе админ теряет доступ
	if id == callerID(c) {
		return presenter.Error(c, http.StatusBadRequest, "you cannot deactivate your own account")
	}
	u, err := h.users.ToggleActive(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type verifyRequest struct {
	Verified *bool `json:"verified"`
}

// VerifyEmployer sets an employer's verified badge; an empty body verifies.
// @Summary  Verify employer
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id    path string        true  "employer id"
// @Param    input body verifyRequest false "verified flag (default true)"
// @Security BearerAuth
// @Success  200 {object} profile.EmployerProfile
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /admin/employers/{id}/verify [post]
func (h *AdminHandler) VerifyEmployer(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var req verifyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}
	verified := req.Verified == nil || *req.Verified
	p, err := h.profiles.VerifyEmployer(c.UserContext(), id, verified)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Jobs lists every job for moderation.
// @Summary  Manage jobs
// @Tags     admin
// @Produce  json
// @Param    status   query string false "draft, active, paused or closed"
// @Param    category query string false "category id"
// @Param    search   query string false "title or company substring"
// @Param    page     query int    false "page number"
// @Param    limit    query int    false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[job.Listing]
// @Router   /admin/jobs [get]
func (h *AdminHandler) Jobs(c *fiber.Ctx) error {
	f := job.AdminFilter{Search: strings.TrimSpace(c.Query("search"))}
	if s := job.Status(c.Query("status")); s.Valid() {
		f.Status = s
	}
	if id, err := uuid.Parse(c.Query("category")); err == nil {
		f.CategoryID = &id
	}
	page, limit := parsePage(c)
	items, total, err := h.jobs.ListAll(c.UserContext(), f, page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

type jobStatusRequest struct {
	Status job.Status `json:"status"`
}

// SetJobStatus changes any job's status.
// @Summary  Set job status
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id    path string           true "job id"
// @Param    input body jobStatusRequest true "new status"
// @Security BearerAuth
// @Success  200 {object} job.Job
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /admin/jobs/{id}/status [post]
func (h *AdminHandler) SetJobStatus(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var req jobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	j, err := h.jobs.SetStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory adds a job category.
// @Summary  Create category
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    input body categoryRequest true "category"
// @Security BearerAuth
// @Success  201 {object} job.Category
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	cat, err := h.jobs.CreateCategory(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, cat)
}

// ExportUsers downloads every account as CSV.
// @Summary  Export users
// @Tags     admin
// @Produce  text/csv
// @Security BearerAuth
// @Success  200 {file} file
// @Router   /admin/export/users [get]
func (h *AdminHandler) ExportUsers(c *fiber.Ctx) error {
	return sendCSV(c, export.UsersFilename, h.export.WriteUsers)
}

// ExportJobs downloads every job as CSV.
// @Summary  Export jobs
// @Tags     admin
// @Produce  text/csv
// @Security BearerAuth
// @Success  200 {file} file
// @Router   /admin/export/jobs [get]
func (h *AdminHandler) ExportJobs(c *fiber.Ctx) error {
	return sendCSV(c, export.JobsFilename, h.export.WriteJobs)
}

// sendCSV renders the whole report before writing headers so a failure is still a JSON error.
func sendCSV(c *fiber.Ctx, filename string, write func(context.Context, io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(c.UserContext(), &buf); err != nil {
		return presenter.Fail(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
