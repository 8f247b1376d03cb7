package repository

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"
)

// CompetitionsRepository lists competitions that have at least one
// valid result, ordered by how much data they carry.
type CompetitionsRepository struct {
	db DB
}

// Competition is one row of the competitions listing, joined with its
// country and ranking category names plus the valid result count.
type Competition struct {
	ID                  int        `db:"id" json:"id"`
	Name                string     `db:"name" json:"name"`
	Venue               *string    `db:"venue" json:"venue"`
	CountryCode         *string    `db:"country_code" json:"country_code"`
	StartDate           *time.Time `db:"start_date" json:"start_date"`
	RankingCategoryID   *int       `db:"ranking_category_id" json:"ranking_category_id"`
	CountryName         *string    `db:"country_name" json:"country_name"`
	RankingCategoryName *string    `db:"ranking_category_name" json:"ranking_category_name"`
	ResultCount         int        `db:"result_count" json:"result_count"`
}

const competitionSearchClause = ` WHERE (c.name ILIKE $1 OR c.venue ILIKE $1 OR co.name ILIKE $1)`

// competitionSearchTerm normalizes a raw search string into an ILIKE
// pattern, or "" when the term is too short to filter on.
func competitionSearchTerm(search string) string {
	search = strings.TrimSpace(search)
	if utf8.RuneCountInString(search) < 2 {
		return ""
	}
	return "%" + search + "%"
}

// List returns one page of competitions matching search. Competitions
// without any valid result are excluded, and ordering puts the most
// data-rich competitions first.
func (r *CompetitionsRepository) List(ctx context.Context, search string, p paging.Params) ([]Competition, error) {
	query := `
	SELECT c.id, c.name, c.venue, c.country_code, c.start_date, c.ranking_category_id,
	       co.name AS country_name, rc.name AS ranking_category_name,
	       COUNT(r.id) AS result_count
	FROM competitions c
	LEFT JOIN countries co ON c.country_code = co.code
	LEFT JOIN ranking_categories rc ON c.ranking_category_id = rc.id
	LEFT JOIN races ra ON c.id = ra.competition_id
	LEFT JOIN results r ON ra.id = r.race_id AND ` + validMark

	args := []any{}
	if term := competitionSearchTerm(search); term != "" {
		query += competitionSearchClause
		args = append(args, term)
	}

	query += `
	GROUP BY c.id, co.name, rc.name
	HAVING COUNT(r.id) > 0
	ORDER BY result_count DESC, c.start_date DESC`
	query += limitOffset(len(args))
	args = append(args, p.Limit(), p.Offset())

	return collect[Competition](ctx, r.db, query, args...)
}

// Count returns the number of competitions the same search would
// match, for the pagination envelope.
func (r *CompetitionsRepository) Count(ctx context.Context, search string) (int, error) {
	inner := `
	SELECT c.id
	FROM competitions c
	LEFT JOIN countries co ON c.country_code = co.code
	LEFT JOIN races ra ON c.id = ra.competition_id
	LEFT JOIN results r ON ra.id = r.race_id AND ` + validMark

	args := []any{}
	if term := competitionSearchTerm(search); term != "" {
		inner += competitionSearchClause
		args = append(args, term)
	}

	inner += `
	GROUP BY c.id
	HAVING COUNT(r.id) > 0`

	query := `SELECT COUNT(*) FROM (` + inner + `) matched`
	return queryScalar[int](ctx, r.db, query, args...)
}
