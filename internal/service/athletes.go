package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"
)

const (
	athletesDefaultPerPage   = 50
	autocompleteDefaultLimit = 10
	autocompleteMinQuery     = 2
)

// AthletesService assembles the athletes listing and the autocomplete
// search.
type AthletesService struct {
	repos *repository.Repositories
}

type AthleteList struct {
	Athletes   []repository.Athlete `json:"athletes"`
	Pagination paging.Pagination    `json:"pagination"`
}

// AthleteSuggestion is the trimmed row the autocomplete returns.
type AthleteSuggestion struct {
	ID          int     `json:"id"`
	FullName    string  `json:"full_name"`
	CountryName *string `json:"country_name"`
	CountryCode *string `json:"country_code"`
}

type AthleteSuggestions struct {
	Athletes []AthleteSuggestion `json:"athletes"`
}

// List returns one page of athletes matching search in the requested
// sort order.
func (s *AthletesService) List(ctx context.Context, search, sortBy, sortOrder string, page, perPage int) (*AthleteList, error) {
	p := paging.NewParams(page, perPage, athletesDefaultPerPage, paging.BulkMax)
	sort := repository.NewAthleteSort(sortBy, sortOrder)

	athletes, err := s.repos.Athletes.List(ctx, search, sort, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Athletes.Count(ctx, search)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if athletes == nil {
		athletes = []repository.Athlete{}
	}

	return &AthleteList{
		Athletes:   athletes,
		Pagination: paging.NewPagination(p, total),
	}, nil
}

// Autocomplete performs the typeahead search. Queries shorter than two
// characters return an empty list without touching the database.
func (s *AthletesService) Autocomplete(ctx context.Context, query string, limit int) (*AthleteSuggestions, error) {
	suggestions := &AthleteSuggestions{Athletes: []AthleteSuggestion{}}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < autocompleteMinQuery {
		return suggestions, nil
	}

	p := paging.NewParams(1, limit, autocompleteDefaultLimit, paging.AutocompleteMax)
	sort := repository.NewAthleteSort("full_name", "ASC")

	athletes, err := s.repos.Athletes.List(ctx, query, sort, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	for _, a := range athletes {
		suggestions.Athletes = append(suggestions.Athletes, AthleteSuggestion{
			ID:          a.ID,
			FullName:    a.FullName,
			CountryName: a.CountryName,
			CountryCode: a.CountryCode,
		})
	}

	return suggestions, nil
}
