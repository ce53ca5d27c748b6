package ingest

import (
	"github.com/TalentX-App/vacancies/internal/domain"
)

// Posting is a single parsed vacancy posting arriving from the feed.
// The parser pipeline upstream has already turned the raw channel message
// into a structured candidate record; id and parsed_at are not assigned yet.
type Posting struct {
	Source  domain.Source
	Vacancy domain.Vacancy
}
