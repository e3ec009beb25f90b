package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/artem13815/jobboard/pkg/apperr"
	"github.com/artem13815/jobboard/pkg/job"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, job.ErrNotFound))
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows), job.ErrNotFound), job.ErrNotFound)

	cases := map[string]apperr.Kind{
		codeUniqueViolation:     apperr.KindDuplicate,
		codeForeignKeyViolation: apperr.KindNotFound,
		codeCheckViolation:      apperr.KindValidation,
		codeNumericOutOfRange:   apperr.KindValidation,
	}
	for code, kind := range cases {
		err := mapError(&pgconn.PgError{Code: code}, job.ErrNotFound)
		assert.Equal(t, kind, apperr.KindOf(err), code)
	}

	other := errors.New("connection reset")
	assert.Same(t, other, mapError(other, job.ErrNotFound))
}
