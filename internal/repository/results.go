package repository

import (
	"context"
	"time"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"
)

// ResultsRepository reads individual results joined with their race,
// event, discipline and competition context.
type ResultsRepository struct {
	db DB
}

// Result is a single performance with its full context. AthleteName
// and AthleteCountry prefer the linked athlete record and fall back to
// the free text captured on the result row.
type Result struct {
	ID              int        `db:"id" json:"id"`
	RaceID          int        `db:"race_id" json:"race_id"`
	AthleteID       *int       `db:"athlete_id" json:"athlete_id"`
	AthleteName     *string    `db:"athlete_name" json:"athlete_name"`
	AthleteCountry  *string    `db:"athlete_country" json:"athlete_country"`
	Mark            string     `db:"mark" json:"mark"`
	Place           *int       `db:"place" json:"place"`
	RaceDate        *time.Time `db:"race_date" json:"race_date"`
	RaceType        string     `db:"race_type" json:"race_type"`
	EventName       string     `db:"event_name" json:"event_name"`
	DisciplineCode  *string    `db:"discipline_code" json:"discipline_code"`
	DisciplineName  string     `db:"discipline_name" json:"discipline_name"`
	Category        string     `db:"category" json:"category"`
	CompetitionName string     `db:"competition_name" json:"competition_name"`
}

// resultColumns is the shared projection for result listings. The
// identity columns coalesce onto the free-text fallback, race_type
// defaults to Final, and unknown disciplines borrow the event name.
const resultColumns = `
	r.id, r.race_id, r.athlete_id,
	COALESCE(a.full_name, r.athlete_name) AS athlete_name,
	COALESCE(a.country_code, r.nationality) AS athlete_country,
	r.mark, r.place,
	c.start_date AS race_date,
	COALESCE(ra.race_type, 'Final') AS race_type,
	e.event_name, e.discipline_code,
	COALESCE(d.discipline_name, e.event_name) AS discipline_name,
	COALESCE(d.category, 'Track & Field') AS category,
	c.name AS competition_name`

const resultJoins = `
	FROM results r
	JOIN races ra ON r.race_id = ra.id
	JOIN events e ON ra.event_id = e.id
	LEFT JOIN athletes a ON a.id = r.athlete_id
	JOIN competitions c ON ra.competition_id = c.id
	LEFT JOIN disciplines d ON e.discipline_code = d.discipline_code`

// ByCompetition returns one page of valid results for a competition,
// best places first.
func (r *ResultsRepository) ByCompetition(ctx context.Context, competitionID int, p paging.Params) ([]Result, error) {
	query := `SELECT` + resultColumns + resultJoins + `
	WHERE ra.competition_id = $1
	AND ` + validMark + `
	ORDER BY c.start_date DESC, r.place ASC` +
		limitOffset(1)

	return collect[Result](ctx, r.db, query, competitionID, p.Limit(), p.Offset())
}

// CountByCompetition returns the number of valid results recorded for
// a competition.
func (r *ResultsRepository) CountByCompetition(ctx context.Context, competitionID int) (int, error) {
	query := `
	SELECT COUNT(r.id)
	FROM results r
	JOIN races ra ON r.race_id = ra.id
	WHERE ra.competition_id = $1
	AND ` + validMark

	return queryScalar[int](ctx, r.db, query, competitionID)
}

// ByAthlete returns one page of an athlete's results. Rows link by
// athlete_id when resolved; unresolved rows match on the athlete's
// exact full name. DISTINCT ON keeps each result once even when both
// predicates hit.
func (r *ResultsRepository) ByAthlete(ctx context.Context, athleteID int, fullName string, p paging.Params) ([]Result, error) {
	query := `SELECT DISTINCT ON (r.id)` + resultColumns + resultJoins + `
	WHERE (r.athlete_id = $1 OR (r.athlete_id IS NULL AND r.athlete_name = $2))
	AND ` + validMark + `
	ORDER BY r.id, c.start_date DESC, r.place ASC` +
		limitOffset(2)

	return collect[Result](ctx, r.db, query, athleteID, fullName, p.Limit(), p.Offset())
}

// CountByAthlete returns the number of distinct valid results for the
// athlete, using the same id-or-name predicate as ByAthlete.
func (r *ResultsRepository) CountByAthlete(ctx context.Context, athleteID int, fullName string) (int, error) {
	query := `
	SELECT COUNT(DISTINCT id)
	FROM results r
	WHERE (r.athlete_id = $1 OR (r.athlete_id IS NULL AND r.athlete_name = $2))
	AND ` + validMark

	return queryScalar[int](ctx, r.db, query, athleteID, fullName)
}

// ByName returns one page of results whose captured athlete_name
// matches the partial name. This searches the raw result rows, so it
// also finds performances never linked to an athlete record.
func (r *ResultsRepository) ByName(ctx context.Context, name string, p paging.Params) ([]Result, error) {
	query := `SELECT` + resultColumns + resultJoins + `
	WHERE r.athlete_name ILIKE $1
	AND ` + validMark + `
	ORDER BY c.start_date DESC, r.place ASC` +
		limitOffset(1)

	return collect[Result](ctx, r.db, query, "%"+name+"%", p.Limit(), p.Offset())
}

// CountByName returns the number of valid results matching the partial
// name.
func (r *ResultsRepository) CountByName(ctx context.Context, name string) (int, error) {
	query := `
	SELECT COUNT(*)
	FROM results r
	WHERE r.athlete_name ILIKE $1
	AND ` + validMark

	return queryScalar[int](ctx, r.db, query, "%"+name+"%")
}

// CompetitionAthlete is one participant of a competition, aggregated
// across their results there.
type CompetitionAthlete struct {
	ID                 int        `db:"id" json:"id"`
	FullName           *string    `db:"full_name" json:"full_name"`
	FamilyName         string     `db:"family_name" json:"family_name"`
	GivenName          string     `db:"given_name" json:"given_name"`
	CountryCode        *string    `db:"country_code" json:"country_code"`
	Gender             *string    `db:"gender" json:"gender"`
	BirthDate          *time.Time `db:"birth_date" json:"birth_date"`
	CountryName        *string    `db:"country_name" json:"country_name"`
	ResultCount        int        `db:"result_count" json:"result_count"`
	BestPlace          *int       `db:"best_place" json:"best_place"`
	EventsParticipated int        `db:"events_participated" json:"events_participated"`
}

// ListCompetitionAthletes returns one page of athletes who produced at
// least one valid result at the competition, busiest athletes first.
// Unresolved participants keep id 0 and their free-text identity.
func (r *ResultsRepository) ListCompetitionAthletes(ctx context.Context, competitionID int, p paging.Params) ([]CompetitionAthlete, error) {
	query := `
	SELECT
	    COALESCE(a.id, 0) AS id,
	    COALESCE(a.full_name, r.athlete_name) AS full_name,
	    COALESCE(a.family_name, '') AS family_name,
	    COALESCE(a.given_name, '') AS given_name,
	    COALESCE(a.country_code, r.nationality) AS country_code,
	    a.gender,
	    a.birth_date,
	    co.name AS country_name,
	    COUNT(r.id) AS result_count,
	    MIN(r.place) AS best_place,
	    COUNT(DISTINCT e.event_name) AS events_participated
	FROM results r
	JOIN races ra ON r.race_id = ra.id
	JOIN events e ON ra.event_id = e.id
	LEFT JOIN athletes a ON a.id = r.athlete_id
	LEFT JOIN countries co ON COALESCE(a.country_code, r.nationality) = co.code
	WHERE ra.competition_id = $1
	AND ` + validMark + `
	GROUP BY r.athlete_name, a.id, a.full_name, a.family_name, a.given_name,
	         a.country_code, r.nationality, a.gender, a.birth_date, co.name
	ORDER BY result_count DESC` +
		limitOffset(1)

	return collect[CompetitionAthlete](ctx, r.db, query, competitionID, p.Limit(), p.Offset())
}

// CountCompetitionAthletes returns the number of distinct participant
// names at the competition.
func (r *ResultsRepository) CountCompetitionAthletes(ctx context.Context, competitionID int) (int, error) {
	query := `
	SELECT COUNT(DISTINCT r.athlete_name)
	FROM results r
	JOIN races ra ON r.race_id = ra.id
	WHERE ra.competition_id = $1
	AND ` + validMark

	return queryScalar[int](ctx, r.db, query, competitionID)
}
