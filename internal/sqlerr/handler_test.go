package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/athleticsdata/athletics-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Athlete not found", true, nil)

	got := HandleError(original)

	assert.Same(t, original, got)
}

func TestHandleErrorMapsNoRowsToNotFound(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, fmt.Errorf("query athlete: %w", pgx.ErrNoRows)} {
		got := HandleError(err)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, got, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "NOT_FOUND", httpErr.Code)
	}
}

func TestHandleErrorMapsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        "insert or update violates foreign key constraint",
		TableName:      "results",
		ColumnName:     "athlete_id",
		ConstraintName: "results_athlete_id_fkey",
	}

	got := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RESULT_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Athlete does not exist", httpErr.Message)
}

func TestHandleErrorMapsNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "athletes",
		ColumnName: "full_name",
	}

	got := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ATHLETE_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "full_name", httpErr.Errors[0].Field)
}

func TestHandleErrorDefaultsToInternal(t *testing.T) {
	got := HandleError(errors.New("connection reset by peer"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR"}
	converted := ConvertPgError(pgErr)

	assert.Equal(t, UniqueViolation, ErrCode(converted))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
