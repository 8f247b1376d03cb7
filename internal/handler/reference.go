package handler

import (
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ReferenceHandler serves the discipline and country lookup lists.
type ReferenceHandler struct {
	Handler
	reference *service.ReferenceService
}

func NewReferenceHandler(s *server.Server, services *service.Services) *ReferenceHandler {
	return &ReferenceHandler{
		Handler:   NewHandler(s),
		reference: services.Reference,
	}
}

func (h *ReferenceHandler) Disciplines(c echo.Context, _ *EmptyRequest) (*service.DisciplineList, error) {
	return h.reference.Disciplines(c.Request().Context())
}

func (h *ReferenceHandler) Countries(c echo.Context, _ *EmptyRequest) (*service.CountryList, error) {
	return h.reference.Countries(c.Request().Context())
}
