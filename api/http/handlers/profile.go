package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/auth"
	"github.com/artem13815/jobboard/pkg/profile"
	"github.com/artem13815/jobboard/pkg/security/jwt"
)

type ProfileHandler struct {
	users    auth.AuthUseCase
	profiles profile.UseCase
	// Limit of an uploaded resume read into memory (bytes)
	maxBytes int64
}

func NewProfileHandler(users auth.AuthUseCase, profiles profile.UseCase, maxResumeBytes int64) *ProfileHandler {
	return &ProfileHandler{users: users, profiles: profiles, maxBytes: maxResumeBytes}
}

type profileResponse struct {
	User         auth.User            `json:"user"`
	Profile      profile.Profile      `json:"profile"`
	Completeness profile.Completeness `json:"completeness"`
}

// Get returns the caller's account and role-specific profile; admins have no profile.
// @Summary  Own profile
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} profileResponse
// @Router   /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	who := jwt.IdentityFrom(c)
	user, err := h.users.Get(c.UserContext(), who.UserID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.profiles.Lookup(c.UserContext(), user.ID, user.Role)
	if err != nil {
		return presenter.Fail(c, err)
	}
	resp := profileResponse{User: user, Profile: p}
	if p != nil {
		resp.Completeness = p.Completeness()
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// UpdateSeeker replaces the editable fields of the caller's job seeker profile.
// @Summary  Update job seeker profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    input body profile.SeekerInput true "profile fields"
// @Security BearerAuth
// @Success  200 {object} profile.JobSeekerProfile
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /profile/seeker [put]
func (h *ProfileHandler) UpdateSeeker(c *fiber.Ctx) error {
	var in profile.SeekerInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	p, err := h.profiles.UpdateSeeker(c.UserContext(), callerID(c), in)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// UpdateEmployer replaces the editable fields of the caller's company profile.
// @Summary  Update employer profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    input body profile.EmployerInput true "company fields"
// @Security BearerAuth
// @Success  200 {object} profile.EmployerProfile
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /profile/employer [put]
func (h *ProfileHandler) UpdateEmployer(c *fiber.Ctx) error {
	var in profile.EmployerInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	p, err := h.profiles.UpdateEmployer(c.UserContext(), callerID(c), in)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Completeness scores the caller's profile.
// @Summary  Profile completeness
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} profile.Completeness
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /profile/completeness [get]
func (h *ProfileHandler) Completeness(c *fiber.Ctx) error {
	who := jwt.IdentityFrom(c)
	score, err := h.profiles.Completeness(c.UserContext(), who.UserID, who.Role)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, score)
}

// UploadResume stores a PDF or DOCX resume and keeps its text for matching.
// @Summary  Upload resume
// @Tags     profile
// @Accept   multipart/form-data
// @Produce  json
// @Param    resume formData file true "resume (PDF or DOCX)"
// @Security BearerAuth
// @Success  200 {object} profile.JobSeekerProfile
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /profile/resume [post]
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required (pdf or docx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	p, err := h.profiles.AttachResume(c.UserContext(), callerID(c), fh.Filename, data)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// PublicSeeker shows a job seeker profile according to its visibility.
// @Summary  Job seeker profile
// @Tags     profile
// @Produce  json
// @Param    id path string true "job seeker id"
// @Security BearerAuth
// @Success  200 {object} profile.JobSeekerProfile
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /profiles/seekers/{id} [get]
func (h *ProfileHandler) PublicSeeker(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	p, err := h.profiles.PublicSeeker(c.UserContext(), jwt.IdentityFrom(c), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// PublicEmployer shows a company profile.
// @Summary Employer profile
// @Tags    profile
// @Produce json
// @Param   id path string true "employer id"
// @Success 200 {object} profile.EmployerProfile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/employers/{id} [get]
func (h *ProfileHandler) PublicEmployer(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return nil
	}
	p, err := h.profiles.PublicEmployer(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(f)
	}
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
