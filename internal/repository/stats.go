package repository

import "context"

// StatsRepository reports raw table sizes for the stats endpoint.
type StatsRepository struct {
	db DB
}

// Stats holds the row counts of the main tables. These are raw totals,
// not filtered by mark validity.
type Stats struct {
	Competitions int `json:"competitions"`
	Athletes     int `json:"athletes"`
	Results      int `json:"results"`
	Events       int `json:"events"`
}

// Get counts the main tables one by one.
func (r *StatsRepository) Get(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM competitions`, &stats.Competitions},
		{`SELECT COUNT(*) FROM athletes`, &stats.Athletes},
		{`SELECT COUNT(*) FROM results`, &stats.Results},
		{`SELECT COUNT(*) FROM events`, &stats.Events},
	}

	for _, c := range counts {
		n, err := queryScalar[int](ctx, r.db, c.query)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	return stats, nil
}
