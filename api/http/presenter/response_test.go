package presenter

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobboard/pkg/apperr"
)

func TestFail(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest, `{"message":"bad input"}`},
		{apperr.Duplicate("exists"), http.StatusConflict, `{"message":"exists"}`},
		{apperr.Permission("no"), http.StatusForbidden, `{"message":"no"}`},
		{fmt.Errorf("load: %w", apperr.NotFound("job not found")), http.StatusNotFound, `{"message":"job not found"}`},
		{apperr.State("closed"), http.StatusConflict, `{"message":"closed"}`},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, `{"message":"internal server error"}`},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return Fail(c, tc.err) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())
		assert.JSONEq(t, tc.body, string(body))
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage[int](nil, 21, 2, 10)
	assert.Equal(t, []int{}, p.Items)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 0, NewPage([]int{}, 0, 1, 10).Pages)
}
