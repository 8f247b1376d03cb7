package service

import (
	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/server"
)

type Services struct {
	Auth         *AuthService
	Competitions *CompetitionsService
	Athletes     *AthletesService
	Results      *ResultsService
	Reference    *ReferenceService
	Stats        *StatsService
	Singapore    *SingaporeService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Auth:         NewAuthService(s),
		Competitions: &CompetitionsService{repos: repos},
		Athletes:     &AthletesService{repos: repos},
		Results:      &ResultsService{repos: repos},
		Reference:    &ReferenceService{repos: repos},
		Stats:        &StatsService{repos: repos},
		Singapore:    &SingaporeService{repos: repos},
	}, nil
}
