package handler

import (
	"github.com/athleticsdata/athletics-api/internal/server"
	"github.com/athleticsdata/athletics-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router
// setup passes one object around instead of many.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Competitions *CompetitionsHandler
	Athletes     *AthletesHandler
	Results      *ResultsHandler
	Reference    *ReferenceHandler
	Stats        *StatsHandler
	Singapore    *SingaporeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Competitions: NewCompetitionsHandler(s, services),
		Athletes:     NewAthletesHandler(s, services),
		Results:      NewResultsHandler(s, services),
		Reference:    NewReferenceHandler(s, services),
		Stats:        NewStatsHandler(s, services),
		Singapore:    NewSingaporeHandler(s, services),
	}
}
