package handler

import (
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/labstack/echo/v4"
)

// SingaporeHandler serves the Singapore dashboard endpoints. The
// summary loads fast; the chart endpoints exist separately so the UI
// can load them progressively.
type SingaporeHandler struct {
	Handler
	singapore *service.SingaporeService
}

func NewSingaporeHandler(s *server.Server, services *service.Services) *SingaporeHandler {
	return &SingaporeHandler{
		Handler:   NewHandler(s),
		singapore: services.Singapore,
	}
}

func (h *SingaporeHandler) Summary(c echo.Context, _ *EmptyRequest) (*repository.Summary, error) {
	return h.singapore.Summary(c.Request().Context())
}

func (h *SingaporeHandler) TopAthletes(c echo.Context, _ *EmptyRequest) ([]repository.TopAthlete, error) {
	return h.singapore.TopAthletes(c.Request().Context())
}

func (h *SingaporeHandler) Disciplines(c echo.Context, _ *EmptyRequest) ([]repository.DisciplineBreakdown, error) {
	return h.singapore.Disciplines(c.Request().Context())
}

func (h *SingaporeHandler) Timeline(c echo.Context, _ *EmptyRequest) ([]repository.TimelineYear, error) {
	return h.singapore.Timeline(c.Request().Context())
}

func (h *SingaporeHandler) RegionalComparison(c echo.Context, _ *EmptyRequest) ([]repository.CountryComparison, error) {
	return h.singapore.RegionalComparison(c.Request().Context())
}

func (h *SingaporeHandler) Stats(c echo.Context, _ *EmptyRequest) (*service.SingaporeStats, error) {
	return h.singapore.Stats(c.Request().Context())
}
