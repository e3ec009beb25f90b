package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/presenter"
	"github.com/artem13815/jobboard/pkg/meta"
)

type MetaHandler struct {
	info meta.Info
}

func NewMetaHandler(site meta.Site) *MetaHandler { return &MetaHandler{info: meta.Build(site)} }

// Get returns the site branding and every choice list.
// @Summary Site metadata
// @Tags    meta
// @Produce json
// @Success 200 {object} meta.Info
// @Router  /meta [get]
func (h *MetaHandler) Get(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.info)
}
