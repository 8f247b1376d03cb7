package service

import (
	"context"

	"github.com/athleticsdata/athletics-api/internal/repository"
	"github.com/athleticsdata/athletics-api/internal/sqlerr"
)

// SingaporeService serves the Singapore dashboard. The heavy charts
// have their own endpoints so the UI can load them progressively; the
// combined Stats call still exists for a single-shot dashboard fetch.
type SingaporeService struct {
	repos *repository.Repositories
}

// SingaporeHeadline is the count block shared by Summary and Stats.
type SingaporeHeadline struct {
	TotalAthletes       int `json:"total_athletes"`
	AthletesWithResults int `json:"athletes_with_results"`
	TotalCompetitions   int `json:"total_competitions"`
	TotalResults        int `json:"total_results"`
}

type SingaporeStats struct {
	Summary             SingaporeHeadline                `json:"singapore_summary"`
	GenderDistribution  []repository.GenderCount         `json:"gender_distribution"`
	DisciplineBreakdown []repository.DisciplineBreakdown `json:"discipline_breakdown"`
	TimelineData        []repository.TimelineYear        `json:"timeline_data"`
	TopAthletes         []repository.TopAthlete          `json:"top_athletes"`
	RegionalComparison  []repository.CountryComparison   `json:"regional_comparison"`
}

func (s *SingaporeService) Summary(ctx context.Context) (*repository.Summary, error) {
	summary, err := s.repos.Singapore.Summary(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if summary.GenderDistribution == nil {
		summary.GenderDistribution = []repository.GenderCount{}
	}
	return summary, nil
}

func (s *SingaporeService) TopAthletes(ctx context.Context) ([]repository.TopAthlete, error) {
	athletes, err := s.repos.Singapore.TopAthletes(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if athletes == nil {
		athletes = []repository.TopAthlete{}
	}
	return athletes, nil
}

func (s *SingaporeService) Disciplines(ctx context.Context) ([]repository.DisciplineBreakdown, error) {
	disciplines, err := s.repos.Singapore.Disciplines(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if disciplines == nil {
		disciplines = []repository.DisciplineBreakdown{}
	}
	return disciplines, nil
}

func (s *SingaporeService) Timeline(ctx context.Context) ([]repository.TimelineYear, error) {
	timeline, err := s.repos.Singapore.Timeline(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if timeline == nil {
		timeline = []repository.TimelineYear{}
	}
	return timeline, nil
}

func (s *SingaporeService) RegionalComparison(ctx context.Context) ([]repository.CountryComparison, error) {
	comparison, err := s.repos.Singapore.RegionalComparison(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if comparison == nil {
		comparison = []repository.CountryComparison{}
	}
	return comparison, nil
}

// Stats assembles the full dashboard in one response.
func (s *SingaporeService) Stats(ctx context.Context) (*SingaporeStats, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	disciplines, err := s.Disciplines(ctx)
	if err != nil {
		return nil, err
	}

	timeline, err := s.Timeline(ctx)
	if err != nil {
		return nil, err
	}

	topAthletes, err := s.TopAthletes(ctx)
	if err != nil {
		return nil, err
	}

	comparison, err := s.RegionalComparison(ctx)
	if err != nil {
		return nil, err
	}

	return &SingaporeStats{
		Summary: SingaporeHeadline{
			TotalAthletes:       summary.TotalAthletes,
			AthletesWithResults: summary.AthletesWithResults,
			TotalCompetitions:   summary.TotalCompetitions,
			TotalResults:        summary.TotalResults,
		},
		GenderDistribution:  summary.GenderDistribution,
		DisciplineBreakdown: disciplines,
		TimelineData:        timeline,
		TopAthletes:         topAthletes,
		RegionalComparison:  comparison,
	}, nil
}
