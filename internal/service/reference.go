package service

import (
	"context"

	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"
)

// ReferenceService serves the discipline and country lookup lists.
type ReferenceService struct {
	repos *repository.Repositories
}

type DisciplineList struct {
	Disciplines []repository.Discipline `json:"disciplines"`
}

type CountryList struct {
	Countries []repository.Country `json:"countries"`
}

func (s *ReferenceService) Disciplines(ctx context.Context) (*DisciplineList, error) {
	disciplines, err := s.repos.Reference.ListDisciplines(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if disciplines == nil {
		disciplines = []repository.Discipline{}
	}
	return &DisciplineList{Disciplines: disciplines}, nil
}

func (s *ReferenceService) Countries(ctx context.Context) (*CountryList, error) {
	countries, err := s.repos.Reference.ListCountries(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if countries == nil {
		countries = []repository.Country{}
	}
	return &CountryList{Countries: countries}, nil
}
