// Package paging implements the page/per_page envelope shared by every
// listing endpoint.
//
// Callers parse page and per_page from the query string, clamp per_page
// against an endpoint-specific cap, and attach a Pagination block to
// the response so clients can walk the full collection.
package paging

// Per-endpoint caps on per_page. Listing endpoints allow bulk reads;
// the autocomplete search stays small because it backs a typeahead.
// Defaults are per endpoint and passed into NewParams by the services.
const (
	BulkMax         = 200
	AutocompleteMax = 50
)

// Params carries a validated page/per_page pair.
type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps perPage into [1, max], substituting def when
// perPage is zero or negative. Page must already be validated >= 1.
func NewParams(page, perPage, def, max int) Params {
	if perPage < 1 {
		perPage = def
	}
	if perPage > max {
		perPage = max
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the SQL OFFSET for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit returns the SQL LIMIT for this page.
func (p Params) Limit() int {
	return p.PerPage
}

// Pagination is the response envelope block describing the collection.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPagination builds the envelope for a page of a collection with
// total matching rows. Pages is a ceiling division, so a partial final
// page still counts.
func NewPagination(p Params, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return Pagination{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
	}
}
