package domain

import "github.com/TalentX-App/vacancies/internal/apperr"

// SortField enumerates the fields a search may be ordered by.
type SortField string

// List of sortable fields
const (
	SortByPublishedDate SortField = "published_date"
	SortByTitle         SortField = "title"
)

// Valid checks if the SortField is one of the allowed values.
func (f SortField) Valid() bool {
	return f == SortByPublishedDate || f == SortByTitle
}

// Sort directions, document-store style: -1 descending, 1 ascending.
const (
	SortAsc  = 1
	SortDesc = -1
)

// Filter is the opaque search predicate. Only supplied fields constrain
// the result; the zero value matches every record. The repository alone
// translates it into storage syntax.
type Filter struct {
	// Company restricts to vacancies whose company contains the value,
	// case-insensitively.
	Company *string
	// Specialization restricts to vacancies whose title or description
	// contains the value, case-insensitively.
	Specialization *string
	// SalaryMin keeps vacancies whose salary range reaches at least this
	// value (range.max >= SalaryMin). SalaryMax keeps vacancies whose
	// range starts at or below it (range.min <= SalaryMax). Vacancies
	// without a salary range are excluded whenever either bound is set.
	SalaryMin *int
	SalaryMax *int
}

// Page bounds and orders one search call.
type Page struct {
	Skip      int
	Limit     int
	SortBy    SortField
	SortOrder int
}

// Pagination bounds.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// DefaultPage returns the page applied when the caller supplies nothing:
// first ten records, newest published first.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit, SortBy: SortByPublishedDate, SortOrder: SortDesc}
}

// Normalize validates the page and applies the limit clamp. Skip past the
// end of the result set is legal and yields an empty page; limit above
// MaxLimit silently clamps; everything else out of range is rejected.
func (p *Page) Normalize() error {
	errs := apperr.NewValidation()
	if p.Skip < 0 {
		errs.Add("skip", "must not be negative")
	}
	if p.Limit <= 0 {
		errs.Add("limit", "must be positive")
	}
	if !p.SortBy.Valid() {
		errs.Add("sort_by", "must be published_date or title")
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		errs.Add("sort_order", "must be -1 or 1")
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return nil
}
