package vacancy

import (
	"context"

	"github.com/TalentX-App/vacancies/internal/domain"
)

// vacancyRepository defines storage operations required by the business layer.
type vacancyRepository interface {
	Get(ctx context.Context, id string) (*domain.Vacancy, error)
	Search(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Vacancy, int64, error)
	Create(ctx context.Context, v *domain.Vacancy) (string, error)
	Replace(ctx context.Context, v *domain.Vacancy) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
