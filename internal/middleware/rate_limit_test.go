package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/athleticsdata/athletics-api/internal/errs"
	"github.com/athleticsdata/athletics-api/internal/server"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimiter(t *testing.T) (*RateLimitMiddleware, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zerolog.Nop()
	s := &server.Server{
		Logger: &log,
		Redis:  client,
	}

	return NewRateLimitMiddleware(s), mr
}

func doRequest(t *testing.T, handler echo.HandlerFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/competitions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler(c)
}

func TestLimitAllowsWithinBudget(t *testing.T) {
	rl, _ := newRateLimiter(t)

	handler := rl.Limit("competitions", 3, time.Hour)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.NoError(t, doRequest(t, handler))
	}
}

func TestLimitRejectsOverBudget(t *testing.T) {
	rl, _ := newRateLimiter(t)

	handler := rl.Limit("competitions", 2, time.Hour)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, doRequest(t, handler))
	require.NoError(t, doRequest(t, handler))

	err := doRequest(t, handler)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", httpErr.Code)
}

func TestLimitResetsAfterWindow(t *testing.T) {
	rl, mr := newRateLimiter(t)

	handler := rl.Limit("stats", 1, time.Hour)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, doRequest(t, handler))
	require.Error(t, doRequest(t, handler))

	mr.FastForward(time.Hour + time.Minute)

	assert.NoError(t, doRequest(t, handler))
}

func TestLimitFailsOpenWithoutRedis(t *testing.T) {
	rl, mr := newRateLimiter(t)
	mr.Close()

	handler := rl.Limit("competitions", 1, time.Hour)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Redis is down, both requests must still go through.
	assert.NoError(t, doRequest(t, handler))
	assert.NoError(t, doRequest(t, handler))
}

func TestLimitKeysAreScopedPerRoute(t *testing.T) {
	rl, _ := newRateLimiter(t)

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	competitions := rl.Limit("competitions", 1, time.Hour)(ok)
	athletes := rl.Limit("athletes", 1, time.Hour)(ok)

	require.NoError(t, doRequest(t, competitions))
	require.Error(t, doRequest(t, competitions))

	// Exhausting one route's budget must not affect another route.
	assert.NoError(t, doRequest(t, athletes))
}
