package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/athleticsdata/athletics-api/internal/errs"
	"github.com/athleticsdata/athletics-api/internal/lib/paging"
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
)

const (
	resultsDefaultPerPage = 100
	byNameMinLength       = 2
)

// ResultsService serves the per-competition and per-athlete result
// listings.
type ResultsService struct {
	repos *repository.Repositories
}

type CompetitionResults struct {
	Results       []repository.Result `json:"results"`
	CompetitionID int                 `json:"competition_id"`
	Page          int                 `json:"page"`
	PerPage       int                 `json:"per_page"`
	Total         int                 `json:"total"`
}

type CompetitionAthletes struct {
	Athletes      []repository.CompetitionAthlete `json:"athletes"`
	CompetitionID int                             `json:"competition_id"`
	Page          int                             `json:"page"`
	PerPage       int                             `json:"per_page"`
	Total         int                             `json:"total"`
	Pagination    paging.Pagination               `json:"pagination"`
}

type AthleteResults struct {
	Results     []repository.Result `json:"results"`
	AthleteID   int                 `json:"athlete_id"`
	AthleteName string              `json:"athlete_name"`
	Page        int                 `json:"page"`
	PerPage     int                 `json:"per_page"`
	Total       int                 `json:"total"`
}

type NamedResults struct {
	Results     []repository.Result `json:"results"`
	AthleteName string              `json:"athlete_name"`
	Page        int                 `json:"page"`
	PerPage     int                 `json:"per_page"`
	Total       int                 `json:"total"`
}

// ByCompetition returns one page of a competition's results.
func (s *ResultsService) ByCompetition(ctx context.Context, competitionID, page, perPage int) (*CompetitionResults, error) {
	p := paging.NewParams(page, perPage, resultsDefaultPerPage, paging.BulkMax)

	results, err := s.repos.Results.ByCompetition(ctx, competitionID, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Results.CountByCompetition(ctx, competitionID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if results == nil {
		results = []repository.Result{}
	}

	return &CompetitionResults{
		Results:       results,
		CompetitionID: competitionID,
		Page:          p.Page,
		PerPage:       p.PerPage,
		Total:         total,
	}, nil
}

// ParticipantsByCompetition returns one page of a competition's
// participants with their aggregate stats.
func (s *ResultsService) ParticipantsByCompetition(ctx context.Context, competitionID, page, perPage int) (*CompetitionAthletes, error) {
	p := paging.NewParams(page, perPage, resultsDefaultPerPage, paging.BulkMax)

	athletes, err := s.repos.Results.ListCompetitionAthletes(ctx, competitionID, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Results.CountCompetitionAthletes(ctx, competitionID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if athletes == nil {
		athletes = []repository.CompetitionAthlete{}
	}

	return &CompetitionAthletes{
		Athletes:      athletes,
		CompetitionID: competitionID,
		Page:          p.Page,
		PerPage:       p.PerPage,
		Total:         total,
		Pagination:    paging.NewPagination(p, total),
	}, nil
}

// ByAthlete returns one page of an athlete's results. The athlete must
// exist; its full name then also matches unresolved result rows.
func (s *ResultsService) ByAthlete(ctx context.Context, athleteID, page, perPage int) (*AthleteResults, error) {
	p := paging.NewParams(page, perPage, resultsDefaultPerPage, paging.BulkMax)

	fullName, err := s.repos.Athletes.GetFullName(ctx, athleteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Athlete not found", true, nil)
		}
		return nil, sqlerr.HandleError(err)
	}

	results, err := s.repos.Results.ByAthlete(ctx, athleteID, fullName, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Results.CountByAthlete(ctx, athleteID, fullName)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if results == nil {
		results = []repository.Result{}
	}

	return &AthleteResults{
		Results:     results,
		AthleteID:   athleteID,
		AthleteName: fullName,
		Page:        p.Page,
		PerPage:     p.PerPage,
		Total:       total,
	}, nil
}

// ByName returns one page of results whose captured athlete name
// matches the partial name. Names shorter than two characters are
// rejected.
func (s *ResultsService) ByName(ctx context.Context, name string, page, perPage int) (*NamedResults, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < byNameMinLength {
		return nil, errs.NewBadRequestError("Athlete name must be at least 2 characters", true, nil, nil, nil)
	}

	p := paging.NewParams(page, perPage, resultsDefaultPerPage, paging.BulkMax)

	results, err := s.repos.Results.ByName(ctx, name, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Results.CountByName(ctx, name)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if results == nil {
		results = []repository.Result{}
	}

	return &NamedResults{
		Results:     results,
		AthleteName: name,
		Page:        p.Page,
		PerPage:     p.PerPage,
		Total:       total,
	}, nil
}
