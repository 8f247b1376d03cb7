package service

import (
	"context"

	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"
)

// StatsService reports overall database sizes.
type StatsService struct {
	repos *repository.Repositories
}

func (s *StatsService) Get(ctx context.Context) (*repository.Stats, error) {
	stats, err := s.repos.Stats.Get(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return stats, nil
}
