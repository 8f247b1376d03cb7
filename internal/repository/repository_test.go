package repository

import (
	"context"
	"testing"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transientErr simulates a transport failure the driver marks as safe
// to retry.
type transientErr struct{}

func (transientErr) Error() string     { return "conn closed" }
func (transientErr) SafeToRetry() bool { return true }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestAthleteSearchClause(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		wantEmpty   bool
		wantCountry bool
	}{
		{"empty term", "", true, false},
		{"single char", "a", true, false},
		{"whitespace only", "   ", true, false},
		{"plain name", "smith", false, false},
		{"lowercase code stays name search", "sg", false, false},
		{"uppercase code widens", "SG", false, true},
		{"three letter code widens", "SGP", false, true},
		{"four uppercase letters stays name search", "SMIT", false, false},
		// Lengths count runes, not bytes.
		{"single multibyte rune too short", "é", true, false},
		{"three uppercase multibyte runes widen", "ÉÀÖ", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := athleteSearchClause(tt.search)
			if tt.wantEmpty {
				assert.Empty(t, clause)
				assert.Empty(t, args)
				return
			}
			require.Len(t, args, 1)
			assert.Contains(t, clause, "a.full_name ILIKE $1")
			if tt.wantCountry {
				assert.Contains(t, clause, "co.name ILIKE $1")
			} else {
				assert.NotContains(t, clause, "co.name")
			}
		})
	}
}

func TestNewAthleteSort(t *testing.T) {
	assert.Equal(t, AthleteSort{By: "birth_date", Order: "DESC"}, NewAthleteSort("birth_date", "desc"))
	assert.Equal(t, AthleteSort{By: "full_name", Order: "ASC"}, NewAthleteSort("salary; DROP TABLE athletes", "ASC"))
	assert.Equal(t, AthleteSort{By: "full_name", Order: "ASC"}, NewAthleteSort("full_name", "sideways"))
}

func TestCompetitionSearchTerm(t *testing.T) {
	assert.Empty(t, competitionSearchTerm(" a "))
	assert.Empty(t, competitionSearchTerm("é"))
	assert.Equal(t, "%Asian Games%", competitionSearchTerm(" Asian Games "))
}

func TestAthletesListWidensForCountryCode(t *testing.T) {
	mock := newMock(t)
	repo := &AthletesRepository{db: mock}

	rows := pgxmock.NewRows([]string{
		"id", "full_name", "family_name", "given_name",
		"country_code", "gender", "birth_date", "country_name",
	}).AddRow(7, "Shanti Pereira", nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`co\.name ILIKE \$1`).
		WithArgs("%SGP%", 50, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "SGP", NewAthleteSort("", ""),
		paging.NewParams(1, 50, 50, paging.BulkMax))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Shanti Pereira", got[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetitionsListExcludesEmptyCompetitions(t *testing.T) {
	mock := newMock(t)
	repo := &CompetitionsRepository{db: mock}

	rows := pgxmock.NewRows([]string{
		"id", "name", "venue", "country_code", "start_date",
		"ranking_category_id", "country_name", "ranking_category_name", "result_count",
	}).AddRow(3, "SEA Games", nil, nil, nil, nil, nil, nil, 412)

	mock.ExpectQuery(`HAVING COUNT\(r\.id\) > 0`).
		WithArgs("%Games%", 20, 0).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "Games",
		paging.NewParams(1, 20, 50, paging.BulkMax))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 412, got[0].ResultCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetitionsCountIgnoresShortSearch(t *testing.T) {
	mock := newMock(t)
	repo := &CompetitionsRepository{db: mock}

	// A one character term must not produce a WHERE clause or args.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM \(`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(98))

	got, err := repo.Count(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, 98, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultsByAthleteMatchesIdOrFallbackName(t *testing.T) {
	mock := newMock(t)
	repo := &ResultsRepository{db: mock}

	// pgxmock scans values by exact kind, so pointer-typed struct
	// fields need pointer values in the mock row.
	name, country, place := "Shanti Pereira", "SGP", 1
	rows := pgxmock.NewRows([]string{
		"id", "race_id", "athlete_id", "athlete_name", "athlete_country",
		"mark", "place", "race_date", "race_type", "event_name",
		"discipline_code", "discipline_name", "category", "competition_name",
	}).AddRow(11, 4, nil, &name, &country,
		"23.01", &place, nil, "Final", "200m",
		nil, "200m", "Track & Field", "SEA Games")

	mock.ExpectQuery(`DISTINCT ON \(r\.id\)`).
		WithArgs(7, "Shanti Pereira", 100, 0).
		WillReturnRows(rows)

	got, err := repo.ByAthlete(context.Background(), 7, "Shanti Pereira",
		paging.NewParams(1, 100, 100, paging.BulkMax))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "23.01", got[0].Mark)
	assert.Nil(t, got[0].AthleteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRetriesOnceOnTransientError(t *testing.T) {
	mock := newMock(t)
	repo := &ReferenceRepository{db: mock}

	mock.ExpectQuery(`SELECT code, name FROM countries`).
		WillReturnError(transientErr{})
	mock.ExpectQuery(`SELECT code, name FROM countries`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).AddRow("SGP", "Singapore"))

	got, err := repo.ListCountries(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Singapore", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryDoesNotRetryServerErrors(t *testing.T) {
	mock := newMock(t)
	repo := &ReferenceRepository{db: mock}

	mock.ExpectQuery(`SELECT code, name FROM countries`).
		WillReturnError(assert.AnError)

	_, err := repo.ListCountries(context.Background())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsGet(t *testing.T) {
	mock := newMock(t)
	repo := &StatsRepository{db: mock}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM competitions`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM athletes`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4800))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM results`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(95000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(230))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &Stats{
		Competitions: 120,
		Athletes:     4800,
		Results:      95000,
		Events:       230,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
