package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/stats"
)

// EmployerHandler serves an employer's jobs and the applications to them.
type EmployerHandler struct {
	jobs  job.UseCase
	apps  application.UseCase
	stats stats.UseCase
}

func NewEmployerHandler(jobs job.UseCase, apps application.UseCase, st stats.UseCase) *EmployerHandler {
	return &EmployerHandler{jobs: jobs, apps: apps, stats: st}
}

// Dashboard reports job and application counts by status.
// @Summary  Employer dashboard
// @Tags     employer
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} stats.EmployerDashboard
// @Router   /employer/dashboard [get]
func (h *EmployerHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.stats.Employer(c.UserContext(), callerID(c))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Jobs lists the employer's jobs in every status.
// @Summary  My jobs
// @Tags     employer
// @Produce  json
// @Param    page  query int false "page number"
// @Param    limit query int false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[job.Listing]
// @Router   /employer/jobs [get]
func (h *EmployerHandler) Jobs(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	items, total, err := h.jobs.ListByEmployer(c.UserContext(), callerID(c), page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// CreateJob posts a new job owned by the caller.
// @Summary  Create job
// @Tags     employer
// @Accept   json
// @Produce  json
// @Param    input body job.Input true "job fields"
// @Security BearerAuth
// @Success  201 {object} job.Job
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /employer/jobs [post]
func (h *EmployerHandler) CreateJob(c *fiber.Ctx) error {
	var in job.Input
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	j, err := h.jobs.Create(c.UserContext(), callerID(c), in)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, j)
}

// UpdateJob replaces one of the caller's jobs.
// @Summary  Update job
// @Tags     employer
// @Accept   json
// @Produce  json
// @Param    id    path string    true "job id"
// @Param    input body job.Input true "job fields"
// @Security BearerAuth
// @Success  200 {object} job.Job
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /employer/jobs/{id} [put]
func (h *EmployerHandler) UpdateJob(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var in job.Input
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	j, err := h.jobs.Update(c.UserContext(), callerID(c), id, in)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// DeleteJob removes one of the caller's jobs with its applications and bookmarks.
// @Summary  Delete job
// @Tags     employer
// @Produce  json
// @Param    id path string true "job id"
// @Security BearerAuth
// @Success  204
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /employer/jobs/{id} [delete]
func (h *EmployerHandler) DeleteJob(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	if err := h.jobs.Delete(c.UserContext(), callerID(c), id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// JobApplications lists applications to one of the caller's jobs.
// @Summary  Applications for a job
// @Tags     employer
// @Produce  json
// @Param    id     path  string true  "job id"
// @Param    status query string false "application status"
// @Param    page   query int    false "page number"
// @Param    limit  query int    false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[application.Application]
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /employer/jobs/{id}/applications [get]
func (h *EmployerHandler) JobApplications(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	page, limit := parsePage(c)
	items, total, err := h.apps.ListForJob(c.UserContext(), callerID(c), id, statusFilter(c), page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// Applications lists applications across all of the caller's jobs.
// @Summary  All received applications
// @Tags     employer
// @Produce  json
// @Param    status query string false "application status"
// @Param    page   query int    false "page number"
// @Param    limit  query int    false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[application.Application]
// @Router   /employer/applications [get]
func (h *EmployerHandler) Applications(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	items, total, err := h.apps.ListForEmployer(c.UserContext(), callerID(c), statusFilter(c), page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// Application shows one application to the caller's jobs.
// @Summary  Application detail
// @Tags     employer
// @Produce  json
// @Param    id path string true "application id"
// @Security BearerAuth
// @Success  200 {object} application.Application
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /employer/applications/{id} [get]
func (h *EmployerHandler) Application(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	a, err := h.apps.ForEmployer(c.UserContext(), callerID(c), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// UpdateApplication changes an application's status and/or notes.
// @Summary  Update application
// @Tags     employer
// @Accept   json
// @Produce  json
// @Param    id    path string                   true "application id"
// @Param    input body application.StatusUpdate true "new status and/or notes"
// @Security BearerAuth
// @Success  200 {object} application.Application
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /employer/applications/{id} [post]
func (h *EmployerHandler) UpdateApplication(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var upd application.StatusUpdate
	if err := c.BodyParser(&upd); err != nil {
		return invalidJSON(c)
	}
	a, err := h.apps.UpdateStatus(c.UserContext(), callerID(c), id, upd)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

type bulkRequest struct {
	ApplicationIDs []uuid.UUID        `json:"applicationIds"`
	Status         application.Status `json:"status"`
}

// BulkUpdate sets one status on many applications and reports how many changed.
// @Summary  Bulk status update
// @Tags     employer
// @Accept   json
// @Produce  json
// @Param    input body bulkRequest true "application ids and target status"
// @Security BearerAuth
// @Success  200 {object} application.BulkResult
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /employer/applications/bulk [post]
func (h *EmployerHandler) BulkUpdate(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if len(req.ApplicationIDs) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "applicationIds are required")
	}
	if len(req.ApplicationIDs) > application.MaxBulk {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("at most %d applications can be updated at once", application.MaxBulk))
	}
	res, err := h.apps.BulkUpdateStatus(c.UserContext(), callerID(c), req.ApplicationIDs, req.Status)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}
