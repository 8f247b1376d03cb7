package repository

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/athleticsdata/athletics-api/internal/lib/paging"
)

// AthletesRepository lists and searches the athletes table.
type AthletesRepository struct {
	db DB
}

// Athlete is one row of the athletes listing joined with its country
// name.
type Athlete struct {
	ID          int        `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	FamilyName  *string    `db:"family_name" json:"family_name"`
	GivenName   *string    `db:"given_name" json:"given_name"`
	CountryCode *string    `db:"country_code" json:"country_code"`
	Gender      *string    `db:"gender" json:"gender"`
	BirthDate   *time.Time `db:"birth_date" json:"birth_date"`
	CountryName *string    `db:"country_name" json:"country_name"`
}

// AthleteSort carries an already validated sort column and direction.
type AthleteSort struct {
	By    string
	Order string
}

// Sortable columns and directions. Anything outside these falls back
// to full_name ASC rather than erroring, so stale client links keep
// working.
var (
	athleteSortFields = map[string]bool{
		"full_name":    true,
		"family_name":  true,
		"given_name":   true,
		"country_code": true,
		"birth_date":   true,
	}
	athleteSortOrders = map[string]bool{
		"ASC":  true,
		"DESC": true,
	}
)

// NewAthleteSort validates a requested sort, substituting the default
// for unknown columns or directions.
func NewAthleteSort(by, order string) AthleteSort {
	if !athleteSortFields[by] {
		by = "full_name"
	}
	order = strings.ToUpper(order)
	if !athleteSortOrders[order] {
		order = "ASC"
	}
	return AthleteSort{By: by, Order: order}
}

// athleteSearchClause builds the WHERE clause for a search term.
//
// Terms shorter than 2 characters produce no filter. A term of at most
// 3 characters in all uppercase looks like a country code, so the
// search widens to country_code and country name; otherwise only the
// name columns are matched.
func athleteSearchClause(search string) (string, []any) {
	search = strings.TrimSpace(search)
	if utf8.RuneCountInString(search) < 2 {
		return "", nil
	}

	term := "%" + search + "%"
	isCountryCode := utf8.RuneCountInString(search) <= 3 &&
		search == strings.ToUpper(search) && search != strings.ToLower(search)

	if isCountryCode {
		return ` WHERE (
			a.full_name ILIKE $1 OR
			a.family_name ILIKE $1 OR
			a.given_name ILIKE $1 OR
			a.country_code ILIKE $1 OR
			co.name ILIKE $1
		)`, []any{term}
	}

	return ` WHERE (
		a.full_name ILIKE $1 OR
		a.family_name ILIKE $1 OR
		a.given_name ILIKE $1
	)`, []any{term}
}

// List returns one page of athletes matching search, in the requested
// sort order.
func (r *AthletesRepository) List(ctx context.Context, search string, sort AthleteSort, p paging.Params) ([]Athlete, error) {
	query := `
	SELECT a.id, a.full_name, a.family_name, a.given_name, a.country_code,
	       a.gender, a.birth_date, co.name AS country_name
	FROM athletes a
	LEFT JOIN countries co ON a.country_code = co.code`

	clause, args := athleteSearchClause(search)
	query += clause

	// Sort inputs come from the allow-list above, never from the
	// request directly.
	query += fmt.Sprintf(" ORDER BY a.%s %s", sort.By, sort.Order)
	query += limitOffset(len(args))
	args = append(args, p.Limit(), p.Offset())

	return collect[Athlete](ctx, r.db, query, args...)
}

// Count returns the number of athletes the same search would match.
func (r *AthletesRepository) Count(ctx context.Context, search string) (int, error) {
	query := `
	SELECT COUNT(*)
	FROM athletes a
	LEFT JOIN countries co ON a.country_code = co.code`

	clause, args := athleteSearchClause(search)
	query += clause

	return queryScalar[int](ctx, r.db, query, args...)
}

// GetFullName returns the full name of the athlete with the given id.
// A missing athlete surfaces as pgx.ErrNoRows.
func (r *AthletesRepository) GetFullName(ctx context.Context, id int) (string, error) {
	query := `SELECT full_name FROM athletes WHERE id = $1`
	return queryScalar[string](ctx, r.db, query, id)
}
