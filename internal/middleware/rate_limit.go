package middleware

import (
	"fmt"
	"time"

	"github.com/athleticsdata/athletics-api/internal/errs"
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces per-route request budgets using Redis
// fixed windows keyed by route name and client IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit caps a route at limit requests per window per client IP.
//
// The counter is INCR + EXPIRE on first hit. If Redis is unreachable
// the limiter fails open: browsing the results database matters more
// than strict quota accounting.
func (rl *RateLimitMiddleware) Limit(name string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", name, c.RealIP())

			count, err := rl.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().
					Err(err).
					Str("endpoint", name).
					Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count == 1 {
				if err := rl.server.Redis.Expire(ctx, key, window).Err(); err != nil {
					GetLogger(c).Warn().
						Err(err).
						Str("endpoint", name).
						Msg("failed to set rate limit window expiry")
				}
			}

			if count > int64(limit) {
				rl.RecordRateLimitHit(name)
				return errs.NewTooManyRequestsError("Rate limit exceeded, try again later")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit emits a New Relic custom event for a rejected
// request, when the agent is configured.
func (rl *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if rl.server.LoggerService != nil && rl.server.LoggerService.GetApplication() != nil {
		rl.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
