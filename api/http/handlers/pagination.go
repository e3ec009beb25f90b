package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/job"
	"github.com/artem13815/jobboard/pkg/security/jwt"
)

// parsePage reads ?page and ?limit; malformed or out-of-range values fall back to the
// defaults (page 1, job.DefaultPageSize), and limit is capped at job.MaxPageSize.
func parsePage(c *fiber.Ctx) (page, limit int) {
	page, limit = 1, job.DefaultPageSize
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, job.MaxPageSize)
		}
	}
	return page, limit
}

func paged[T any](c *fiber.Ctx, items []T, total, page, limit int) error {
	return presenter.JSON(c, http.StatusOK, presenter.NewPage(items, total, page, limit))
}

// pathID parses a UUID route parameter and writes the 400 itself when it is malformed.
func pathID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func callerID(c *fiber.Ctx) uuid.UUID { return jwt.IdentityFrom(c).UserID }

func invalidJSON(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
}
