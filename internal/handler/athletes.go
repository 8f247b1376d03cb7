package handler

import (
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
	"github.com/athleticsdata/athletics-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// AthletesHandler serves the athletes listing and autocomplete search.
type AthletesHandler struct {
	Handler
	athletes *service.AthletesService
}

func NewAthletesHandler(s *server.Server, services *service.Services) *AthletesHandler {
	return &AthletesHandler{
		Handler:  NewHandler(s),
		athletes: services.Athletes,
	}
}

type ListAthletesRequest struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PerPage   int    `query:"per_page" validate:"omitempty,min=1"`
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

func (r *ListAthletesRequest) Validate() error {
	return validation.Struct(r)
}

func (h *AthletesHandler) List(c echo.Context, req *ListAthletesRequest) (*service.AthleteList, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	return h.athletes.List(c.Request().Context(), req.Search, req.SortBy, req.SortOrder, page, req.PerPage)
}

type SearchAthletesRequest struct {
	Q     string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

func (r *SearchAthletesRequest) Validate() error {
	return validation.Struct(r)
}

// Search is the autocomplete endpoint. Queries under two characters
// return an empty list without hitting the database.
func (h *AthletesHandler) Search(c echo.Context, req *SearchAthletesRequest) (*service.AthleteSuggestions, error) {
	return h.athletes.Autocomplete(c.Request().Context(), req.Q, req.Limit)
}
