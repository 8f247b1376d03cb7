package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/athleticsdata/athletics-api/internal/errs"
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAthletesHandler builds an AthletesHandler with no database
// behind it. Only paths that never reach the repositories may be
// exercised through it.
func newTestAthletesHandler() *AthletesHandler {
	nopLogger := zerolog.Nop()
	srv := &server.Server{Logger: &nopLogger}
	services := &service.Services{Athletes: &service.AthletesService{}}

	return NewAthletesHandler(srv, services)
}

func doGet(t *testing.T, target string, fn echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return rec, fn(e.NewContext(req, rec))
}

func TestSearchShortQueryReturnsEmptyList(t *testing.T) {
	h := newTestAthletesHandler()
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	rec, err := doGet(t, "/api/athletes/search?q=a", fn)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"athletes":[]}`, rec.Body.String())
}

func TestSearchCountsRunesNotBytes(t *testing.T) {
	h := newTestAthletesHandler()
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	// One two-byte rune is still a one-character query.
	rec, err := doGet(t, "/api/athletes/search?q=%C3%A9", fn)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"athletes":[]}`, rec.Body.String())
}

func TestSearchTrimsQueryBeforeLengthCheck(t *testing.T) {
	h := newTestAthletesHandler()
	fn := Handle(h.Handler, h.Search, http.StatusOK)

	// Two characters of padding around a single letter still counts
	// as a one-character query.
	rec, err := doGet(t, "/api/athletes/search?q=%20%20a%20", fn)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"athletes":[]}`, rec.Body.String())
}

func TestListRejectsNegativePage(t *testing.T) {
	h := newTestAthletesHandler()
	fn := Handle(h.Handler, h.List, http.StatusOK)

	_, err := doGet(t, "/api/athletes?page=-1", fn)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "page", httpErr.Errors[0].Field)
	assert.Equal(t, "must be at least 1", httpErr.Errors[0].Error)
}

func TestBindFailureReturnsGenericBadRequest(t *testing.T) {
	h := newTestAthletesHandler()
	fn := Handle(h.Handler, h.List, http.StatusOK)

	_, err := doGet(t, "/api/athletes?page=abc", fn)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request parameters", httpErr.Message)
}

func TestHandleAllocatesFreshRequestPerCall(t *testing.T) {
	h := newTestAthletesHandler()

	var seen []*SearchAthletesRequest
	fn := Handle(h.Handler, func(c echo.Context, req *SearchAthletesRequest) (struct{}, error) {
		seen = append(seen, req)
		return struct{}{}, nil
	}, http.StatusOK)

	_, err := doGet(t, "/api/athletes/search?q=hello&limit=7", fn)
	require.NoError(t, err)

	_, err = doGet(t, "/api/athletes/search", fn)
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	assert.Equal(t, "hello", seen[0].Q)
	assert.Equal(t, 7, seen[0].Limit)
	assert.Empty(t, seen[1].Q)
	assert.Zero(t, seen[1].Limit)
}
