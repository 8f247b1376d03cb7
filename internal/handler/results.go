package handler

import (
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/athleticsdata/athletics-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// ResultsHandler serves the per-competition and per-athlete result
// listings.
type ResultsHandler struct {
	Handler
	results *service.ResultsService
}

func NewResultsHandler(s *server.Server, services *service.Services) *ResultsHandler {
	return &ResultsHandler{
		Handler: NewHandler(s),
		results: services.Results,
	}
}

type CompetitionResultsRequest struct {
	CompetitionID int `param:"competition_id" validate:"required,min=1"`
	Page          int `query:"page" validate:"omitempty,min=1"`
	PerPage       int `query:"per_page" validate:"omitempty,min=1"`
}

func (r *CompetitionResultsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ResultsHandler) ByCompetition(c echo.Context, req *CompetitionResultsRequest) (*service.CompetitionResults, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.results.ByCompetition(c.Request().Context(), req.CompetitionID, page, req.PerPage)
}

func (h *ResultsHandler) AthletesByCompetition(c echo.Context, req *CompetitionResultsRequest) (*service.CompetitionAthletes, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.results.ParticipantsByCompetition(c.Request().Context(), req.CompetitionID, page, req.PerPage)
}

type AthleteResultsRequest struct {
	AthleteID int `param:"athlete_id" validate:"required,min=1"`
	Page      int `query:"page" validate:"omitempty,min=1"`
	PerPage   int `query:"per_page" validate:"omitempty,min=1"`
}

func (r *AthleteResultsRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ResultsHandler) ByAthlete(c echo.Context, req *AthleteResultsRequest) (*service.AthleteResults, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.results.ByAthlete(c.Request().Context(), req.AthleteID, page, req.PerPage)
}

type ResultsByNameRequest struct {
	Name    string `query:"name"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1"`
}

func (r *ResultsByNameRequest) Validate() error {
	return validation.Struct(r)
}

// ByName finds results through the free-text athlete name captured on
// the result rows, including performances never linked to an athlete
// record.
func (h *ResultsHandler) ByName(c echo.Context, req *ResultsByNameRequest) (*service.NamedResults, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.results.ByName(c.Request().Context(), req.Name, page, req.PerPage)
}
