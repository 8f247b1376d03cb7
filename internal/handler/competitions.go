package handler

import (
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/athleticsdata/athletics-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CompetitionsHandler serves the competitions listing.
type CompetitionsHandler struct {
	Handler
	competitions *service.CompetitionsService
}

func NewCompetitionsHandler(s *server.Server, services *service.Services) *CompetitionsHandler {
	return &CompetitionsHandler{
		Handler:      NewHandler(s),
		competitions: services.Competitions,
	}
}

type ListCompetitionsRequest struct {
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1"`
	Search  string `query:"search"`
}

func (r *ListCompetitionsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *CompetitionsHandler) List(c echo.Context, req *ListCompetitionsRequest) (*service.CompetitionList, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.competitions.List(c.Request().Context(), req.Search, page, req.PerPage)
}
