package ingest

import (
	"context"

	"github.com/TalentX-App/vacancies/internal/domain"
)

// sourceRepository abstracts the storage operation the processor needs:
// an insert that is a no-op when the posting's source pair was seen before.
type sourceRepository interface {
	CreateFromSource(ctx context.Context, v *domain.Vacancy, src domain.Source) (bool, error)
}

// counter is the subset of prometheus.Counter the processor uses.
type counter interface {
	Inc()
}
