package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/athleticsdata/athletics-api/internal/errs"
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNameRejectsShortNames(t *testing.T) {
	s := &ResultsService{}

	for _, name := range []string{"", "a", " a ", "  ", "é"} {
		_, err := s.ByName(context.Background(), name, 1, 0)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, "name %q", name)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Athlete name must be at least 2 characters", httpErr.Message)
	}
}

func TestByAthleteUnknownIDReturnsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT full_name FROM athletes`).
		WithArgs(999).
		WillReturnError(pgx.ErrNoRows)

	s := &ResultsService{repos: repository.NewRepositories(mock)}

	_, err = s.ByAthlete(context.Background(), 999, 1, 0)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Athlete not found", httpErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
