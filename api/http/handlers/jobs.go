package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/profile"
	"github.com/artem13815/jobboard/pkg/savedjob"
	"github.com/artem13815/jobboard/pkg/security/jwt"
)

// JobHandler serves the public job board and the job seeker's actions on a job.
type JobHandler struct {
	jobs     job.UseCase
	apps     application.UseCase
	saved    savedjob.UseCase
	profiles profile.UseCase
}

func NewJobHandler(jobs job.UseCase, apps application.UseCase, saved savedjob.UseCase, profiles profile.UseCase) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps, saved: saved, profiles: profiles}
}

// Search lists active jobs.
// @Summary Search jobs
// @Tags    jobs
// @Produce json
// @Param   search           query string false "keyword over title, company, description and skills"
// @Param   category         query string false "category id"
// @Param   location         query string false "location substring"
// @Param   job_type         query string false "full_time, part_time, contract, internship, freelance"
// @Param   experience_level query string false "entry, junior, mid, senior, lead"
// @Param   salary_min       query int    false "minimum salary floor"
// @Param   is_remote        query bool   false "remote jobs only"
// @Param   sort_by          query string false "newest, oldest, salary_desc, salary_asc, popular, title"
// @Param   page             query int    false "page number"
// @Param   limit            query int    false "page size (max 100)"
// @Success 200 {object} job.Page
// @Router  /jobs [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	criteria := job.CriteriaFromQuery(func(key string) string { return c.Query(key) })
	res, err := h.jobs.Search(c.UserContext(), criteria, page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Detail returns an active job, counts the view and, for job seekers, whether they
// applied or saved it.
// @Summary  Job detail
// @Tags     jobs
// @Produce  json
// @Param    id path string true "job id"
// @Security BearerAuth
// @Success  200 {object} job.Detail
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{id} [get]
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var viewer job.Viewer
	if who := jwt.IdentityFrom(c); who.Is(auth.RoleJobSeeker) {
		p, err := h.profiles.Seeker(c.UserContext(), who.UserID)
		if err != nil {
			return presenter.Fail(c, err)
		}
		viewer = job.Viewer{SeekerID: who.UserID, Skills: p.Skills, ResumeText: p.ResumeText}
	}
	d, err := h.jobs.Detail(c.UserContext(), id, viewer)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

// Apply submits an application for an active job.
// @Summary  Apply for a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id    path string       true  "job id"
// @Param    input body applyRequest false "cover letter"
// @Security BearerAuth
// @Success  201 {object} application.Application
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	var req applyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}
	a, err := h.apps.Apply(c.UserContext(), callerID(c), id, req.CoverLetter)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// Save toggles the bookmark of a job.
// @Summary  Save or unsave a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "job id"
// @Security BearerAuth
// @Success  200 {object} map[string]bool
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{id}/save [post]
func (h *JobHandler) Save(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	saved, err := h.saved.Toggle(c.UserContext(), callerID(c), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"saved": saved})
}

// Categories lists job categories with their active job counts.
// @Summary Job categories
// @Tags    jobs
// @Produce json
// @Success 200 {array} job.Category
// @Router  /categories [get]
func (h *JobHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.jobs.Categories(c.UserContext())
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, cats)
}
