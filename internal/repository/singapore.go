package repository

import "context"

// SingaporeRepository aggregates the Singapore dashboard queries.
//
// Identity follows the same fallback as the results listings: a result
// counts as Singaporean when its linked athlete has country_code SGP,
// or, for unresolved rows, when the captured nationality is SGP.
type SingaporeRepository struct {
	db DB
}

// singaporeCode is the IAAF country code the dashboards are built
// around.
const singaporeCode = "SGP"

// regionalCountries are the Southeast Asian neighbors used for the
// regional comparison chart, Singapore included.
var regionalCountries = []string{"SGP", "MAS", "THA", "PHI", "INA", "VNM"}

type GenderCount struct {
	GenderCategory string `db:"gender_category" json:"gender_category"`
	Count          int    `db:"count" json:"count"`
}

// Summary is the fast headline block of the Singapore dashboard.
type Summary struct {
	TotalAthletes       int           `json:"total_athletes"`
	AthletesWithResults int           `json:"athletes_with_results"`
	TotalCompetitions   int           `json:"total_competitions"`
	TotalResults        int           `json:"total_results"`
	GenderDistribution  []GenderCount `json:"gender_distribution"`
}

type TopAthlete struct {
	FullName         string `db:"full_name" json:"full_name"`
	CountryCode      string `db:"country_code" json:"country_code"`
	ResultCount      int    `db:"result_count" json:"result_count"`
	CompetitionCount int    `db:"competition_count" json:"competition_count"`
}

type DisciplineBreakdown struct {
	DisciplineName string `db:"discipline_name" json:"discipline_name"`
	Category       string `db:"category" json:"category"`
	AthleteCount   int    `db:"athlete_count" json:"athlete_count"`
	ResultCount    int    `db:"result_count" json:"result_count"`
}

type TimelineYear struct {
	Year             int `db:"year" json:"year"`
	CompetitionCount int `db:"competition_count" json:"competition_count"`
	RaceCount        int `db:"race_count" json:"race_count"`
	ResultCount      int `db:"result_count" json:"result_count"`
}

type CountryComparison struct {
	CountryCode  string  `db:"country_code" json:"country_code"`
	CountryName  *string `db:"country_name" json:"country_name"`
	AthleteCount int     `db:"athlete_count" json:"athlete_count"`
	ResultCount  int     `db:"result_count" json:"result_count"`
}

// Summary collects the headline counts and gender distribution.
func (r *SingaporeRepository) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	totalAthletes, err := queryScalar[int](ctx, r.db, `
	SELECT COUNT(*)
	FROM athletes a
	WHERE a.country_code = $1`, singaporeCode)
	if err != nil {
		return nil, err
	}
	summary.TotalAthletes = totalAthletes

	// Distinct names across both identity paths: linked athletes and
	// unresolved free-text rows.
	withResults, err := queryScalar[int](ctx, r.db, `
	SELECT COUNT(DISTINCT full_name)
	FROM (
	    SELECT a.full_name
	    FROM athletes a
	    JOIN results r ON a.id = r.athlete_id
	    WHERE a.country_code = $1
	    AND `+validMark+`

	    UNION

	    SELECT r.athlete_name AS full_name
	    FROM results r
	    WHERE r.athlete_id IS NULL
	    AND r.nationality = $1
	    AND `+validMark+`
	) combined`, singaporeCode)
	if err != nil {
		return nil, err
	}
	summary.AthletesWithResults = withResults

	totalCompetitions, err := queryScalar[int](ctx, r.db, `
	SELECT COUNT(*)
	FROM competitions c
	WHERE c.country_code = $1`, singaporeCode)
	if err != nil {
		return nil, err
	}
	summary.TotalCompetitions = totalCompetitions

	totalResults, err := queryScalar[int](ctx, r.db, `
	SELECT COUNT(*)
	FROM results r
	LEFT JOIN athletes a ON a.id = r.athlete_id
	WHERE (a.country_code = $1 OR r.nationality = $1)
	AND `+validMark, singaporeCode)
	if err != nil {
		return nil, err
	}
	summary.TotalResults = totalResults

	genders, err := r.genderDistribution(ctx)
	if err != nil {
		return nil, err
	}
	summary.GenderDistribution = genders

	return summary, nil
}

func (r *SingaporeRepository) genderDistribution(ctx context.Context) ([]GenderCount, error) {
	query := `
	SELECT
	    CASE
	        WHEN LOWER(gender) = 'm' OR gender = 'male' THEN 'Male'
	        WHEN LOWER(gender) = 'f' OR gender = 'female' THEN 'Female'
	        ELSE COALESCE(gender, 'Unknown')
	    END AS gender_category,
	    COUNT(*) AS count
	FROM athletes a
	WHERE a.country_code = $1
	GROUP BY
	    CASE
	        WHEN LOWER(gender) = 'm' OR gender = 'male' THEN 'Male'
	        WHEN LOWER(gender) = 'f' OR gender = 'female' THEN 'Female'
	        ELSE COALESCE(gender, 'Unknown')
	    END
	ORDER BY count DESC`

	return collect[GenderCount](ctx, r.db, query, singaporeCode)
}

// TopAthletes returns the ten Singaporeans with the most valid
// results. The UNION ALL keeps the two identity paths separate so the
// planner avoids a slow OR join.
func (r *SingaporeRepository) TopAthletes(ctx context.Context) ([]TopAthlete, error) {
	query := `
	WITH singapore_results AS (
	    SELECT
	        a.full_name,
	        a.country_code,
	        r.id AS result_id,
	        ra.competition_id
	    FROM athletes a
	    JOIN results r ON a.id = r.athlete_id
	    JOIN races ra ON r.race_id = ra.id
	    WHERE a.country_code = $1
	    AND ` + validMark + `

	    UNION ALL

	    SELECT
	        r.athlete_name AS full_name,
	        r.nationality AS country_code,
	        r.id AS result_id,
	        ra.competition_id
	    FROM results r
	    JOIN races ra ON r.race_id = ra.id
	    WHERE r.athlete_id IS NULL
	    AND r.nationality = $1
	    AND ` + validMark + `
	)
	SELECT
	    full_name,
	    country_code,
	    COUNT(result_id) AS result_count,
	    COUNT(DISTINCT competition_id) AS competition_count
	FROM singapore_results
	GROUP BY full_name, country_code
	ORDER BY result_count DESC
	LIMIT 10`

	return collect[TopAthlete](ctx, r.db, query, singaporeCode)
}

// Disciplines returns the ten disciplines with the most Singaporean
// results.
func (r *SingaporeRepository) Disciplines(ctx context.Context) ([]DisciplineBreakdown, error) {
	query := `
	SELECT
	    COALESCE(d.discipline_name, e.event_name) AS discipline_name,
	    COALESCE(d.category, 'Track & Field') AS category,
	    COUNT(DISTINCT r.athlete_name) AS athlete_count,
	    COUNT(r.id) AS result_count
	FROM results r
	JOIN races ra ON r.race_id = ra.id
	JOIN events e ON ra.event_id = e.id
	LEFT JOIN athletes a ON a.id = r.athlete_id
	LEFT JOIN disciplines d ON e.discipline_code = d.discipline_code
	WHERE (a.country_code = $1 OR r.nationality = $1)
	AND ` + validMark + `
	GROUP BY COALESCE(d.discipline_name, e.event_name), COALESCE(d.category, 'Track & Field')
	HAVING COUNT(r.id) > 0
	ORDER BY result_count DESC
	LIMIT 10`

	return collect[DisciplineBreakdown](ctx, r.db, query, singaporeCode)
}

// Timeline returns per-year activity for competitions hosted in
// Singapore over the last five years.
func (r *SingaporeRepository) Timeline(ctx context.Context) ([]TimelineYear, error) {
	query := `
	SELECT
	    EXTRACT(YEAR FROM c.start_date)::int AS year,
	    COUNT(DISTINCT c.id) AS competition_count,
	    COUNT(DISTINCT ra.id) AS race_count,
	    COUNT(r.id) AS result_count
	FROM competitions c
	LEFT JOIN races ra ON c.id = ra.competition_id
	LEFT JOIN results r ON ra.id = r.race_id AND ` + validMark + `
	WHERE c.country_code = $1
	AND c.start_date >= CURRENT_DATE - INTERVAL '5 years'
	GROUP BY EXTRACT(YEAR FROM c.start_date)
	ORDER BY year DESC`

	return collect[TimelineYear](ctx, r.db, query, singaporeCode)
}

// RegionalComparison compares athlete and result volumes across the
// Southeast Asian group.
func (r *SingaporeRepository) RegionalComparison(ctx context.Context) ([]CountryComparison, error) {
	query := `
	WITH country_results AS (
	    SELECT
	        a.country_code,
	        a.full_name,
	        r.id AS result_id
	    FROM athletes a
	    JOIN results r ON a.id = r.athlete_id
	    WHERE a.country_code = ANY($1)
	    AND ` + validMark + `

	    UNION ALL

	    SELECT
	        r.nationality AS country_code,
	        r.athlete_name AS full_name,
	        r.id AS result_id
	    FROM results r
	    WHERE r.athlete_id IS NULL
	    AND r.nationality = ANY($1)
	    AND ` + validMark + `
	)
	SELECT
	    cr.country_code,
	    co.name AS country_name,
	    COUNT(DISTINCT cr.full_name) AS athlete_count,
	    COUNT(cr.result_id) AS result_count
	FROM country_results cr
	LEFT JOIN countries co ON cr.country_code = co.code
	GROUP BY cr.country_code, co.name
	ORDER BY result_count DESC`

	return collect[CountryComparison](ctx, r.db, query, regionalCountries)
}
