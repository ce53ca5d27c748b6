package handlers

import (
	"context"

	"github.com/TalentX-App/vacancies/internal/domain"
	"github.com/TalentX-App/vacancies/internal/service/vacancy"
)

type vacancyUsecase interface {
	Get(ctx context.Context, id string) (*domain.Vacancy, error)
	Search(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Vacancy, int64, error)
	Create(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error)
	UpdatePartial(ctx context.Context, id string, p domain.PartialVacancyUpdate) (*domain.Vacancy, error)
	Delete(ctx context.Context, id string) error
}

// NewVacancyUsecase wires a vacancy.Service into a vacancyUsecase.
func NewVacancyUsecase(service *vacancy.Service) vacancyUsecase {
	return service
}
