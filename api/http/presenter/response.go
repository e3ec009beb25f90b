package presenter

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/pkg/apperr"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// Page is the envelope of every paginated listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func NewPage[T any](items []T, total, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Page[T]{Items: items, Total: total, Page: page, Limit: limit, Pages: pages}
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Status maps an error kind to its HTTP status.
func Status(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindDuplicate, apperr.KindState:
		return http.StatusConflict
	case apperr.KindPermission:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as a JSON error. Errors without a kind are logged and hidden behind
// a generic 500 message.
func Fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return Error(c, http.StatusInternalServerError, "internal server error")
	}
	return Error(c, Status(kind), apperr.Message(err))
}
