package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReadyAllHealthy(t *testing.T) {
	pg, rd := &stubChecker{name: "postgres"}, &stubChecker{name: "redis"}
	report, err := NewService(pg, nil, rd).Ready(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{"postgres": "ok", "redis": "ok"}, report)
}

func TestReadyReportsEveryChecker(t *testing.T) {
	pg := &stubChecker{name: "postgres", err: errors.New("connection refused")}
	rd := &stubChecker{name: "redis"}
	report, err := NewService(pg, rd).Ready(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "postgres: connection refused")
	assert.Equal(t, 1, rd.calls)
	assert.Equal(t, Report{"postgres": "connection refused", "redis": "ok"}, report)
}
