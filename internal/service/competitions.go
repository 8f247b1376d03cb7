package service

import (
	"context"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"
)

const competitionsDefaultPerPage = 50

// CompetitionsService assembles the competitions listing with its
// pagination envelope.
type CompetitionsService struct {
	repos *repository.Repositories
}

type CompetitionList struct {
	Competitions []repository.Competition `json:"competitions"`
	Pagination   paging.Pagination        `json:"pagination"`
}

// List returns one page of competitions plus the total count for the
// same search.
func (s *CompetitionsService) List(ctx context.Context, search string, page, perPage int) (*CompetitionList, error) {
	p := paging.NewParams(page, perPage, competitionsDefaultPerPage, paging.BulkMax)

	competitions, err := s.repos.Competitions.List(ctx, search, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	total, err := s.repos.Competitions.Count(ctx, search)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if competitions == nil {
		competitions = []repository.Competition{}
	}

	return &CompetitionList{
		Competitions: competitions,
		Pagination:   paging.NewPagination(p, total),
	}, nil
}
