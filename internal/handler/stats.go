package handler

import (
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/labstack/echo/v4"
)

// StatsHandler reports overall database sizes.
type StatsHandler struct {
	Handler
	stats *service.StatsService
}

func NewStatsHandler(s *server.Server, services *service.Services) *StatsHandler {
	return &StatsHandler{
		Handler: NewHandler(s),
		stats:   services.Stats,
	}
}

func (h *StatsHandler) Get(c echo.Context, _ *EmptyRequest) (*repository.Stats, error) {
	return h.stats.Get(c.Request().Context())
}
