package repository

import "context"

// ReferenceRepository serves the small lookup tables (disciplines and
// countries) that clients use to populate filters.
type ReferenceRepository struct {
	db DB
}

type Discipline struct {
	DisciplineCode string  `db:"discipline_code" json:"discipline_code"`
	DisciplineName string  `db:"discipline_name" json:"discipline_name"`
	Category       *string `db:"category" json:"category"`
}

type Country struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// ListDisciplines returns every discipline ordered by name.
func (r *ReferenceRepository) ListDisciplines(ctx context.Context) ([]Discipline, error) {
	query := `SELECT discipline_code, discipline_name, category FROM disciplines ORDER BY discipline_name`
	return collect[Discipline](ctx, r.db, query)
}

// ListCountries returns every country ordered by name.
func (r *ReferenceRepository) ListCountries(ctx context.Context) ([]Country, error) {
	query := `SELECT code, name FROM countries ORDER BY name`
	return collect[Country](ctx, r.db, query)
}
