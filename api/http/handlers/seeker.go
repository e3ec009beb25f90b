package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/application"
	"github.com/artem13815/jobboard/pkg/profile"
	"github.com/artem13815/jobboard/pkg/savedjob"
	"github.com/artem13815/jobboard/pkg/stats"
)

// SeekerHandler serves the job seeker's own area.
type SeekerHandler struct {
	profiles profile.UseCase
	apps     application.UseCase
	saved    savedjob.UseCase
	stats    stats.UseCase
}

func NewSeekerHandler(profiles profile.UseCase, apps application.UseCase, saved savedjob.UseCase, st stats.UseCase) *SeekerHandler {
	return &SeekerHandler{profiles: profiles, apps: apps, saved: saved, stats: st}
}

// Dashboard summarises the seeker's activity and recommends jobs.
// @Summary  Job seeker dashboard
// @Tags     seeker
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} stats.SeekerDashboard
// @Router   /seeker/dashboard [get]
func (h *SeekerHandler) Dashboard(c *fiber.Ctx) error {
	p, err := h.profiles.Seeker(c.UserContext(), callerID(c))
	if err != nil {
		return presenter.Fail(c, err)
	}
	d, err := h.stats.Seeker(c.UserContext(), p)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Applications lists the seeker's applications, newest first.
// @Summary  My applications
// @Tags     seeker
// @Produce  json
// @Param    status query string false "application status"
// @Param    page   query int    false "page number"
// @Param    limit  query int    false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[application.Application]
// @Router   /seeker/applications [get]
func (h *SeekerHandler) Applications(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	items, total, err := h.apps.ListForSeeker(c.UserContext(), callerID(c), statusFilter(c), page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// Application shows one of the seeker's applications.
// @Summary  My application
// @Tags     seeker
// @Produce  json
// @Param    id path string true "application id"
// @Security BearerAuth
// @Success  200 {object} application.Application
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /seeker/applications/{id} [get]
func (h *SeekerHandler) Application(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	a, err := h.apps.ForSeeker(c.UserContext(), callerID(c), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// Withdraw deletes a pending application.
// @Summary  Withdraw application
// @Tags     seeker
// @Produce  json
// @Param    id path string true "application id"
// @Security BearerAuth
// @Success  200 {object} map[string]string
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /seeker/applications/{id} [delete]
func (h *SeekerHandler) Withdraw(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	if err := h.apps.Withdraw(c.UserContext(), callerID(c), id); err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "application withdrawn"})
}

// Saved lists bookmarked jobs, most recent first.
// @Summary  Saved jobs
// @Tags     seeker
// @Produce  json
// @Param    page  query int false "page number"
// @Param    limit query int false "page size"
// @Security BearerAuth
// @Success  200 {object} presenter.Page[savedjob.Saved]
// @Router   /seeker/saved [get]
func (h *SeekerHandler) Saved(c *fiber.Ctx) error {
	page, limit := parsePage(c)
	items, total, err := h.saved.List(c.UserContext(), callerID(c), page, limit)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return paged(c, items, total, page, limit)
}

// statusFilter reads ?status; unknown values mean no filter.
func statusFilter(c *fiber.Ctx) application.Filter {
	s := application.Status(strings.TrimSpace(c.Query("status")))
	if !s.Valid() {
		return application.Filter{}
	}
	return application.Filter{Status: s}
}
