package vacancy

import (
	"context"
	"time"

	"github.com/TalentX-App/vacancies/internal/apperr"
	"github.com/TalentX-App/vacancies/internal/domain"
)

// Service coordinates vacancy business logic and orchestrates repository calls.
type Service struct {
	repo             vacancyRepository
	operationTimeout time.Duration
}

// NewService creates and configures a vacancy Service.
func NewService(r vacancyRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get retrieves a vacancy by its ID. A malformed id is a validation
// failure, an unknown one is apperr.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Vacancy, error) {
	id, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.ErrNotFound
	}
	return v, nil
}

// Search runs the filter against storage and returns one page plus the
// total count of the full matched set. The page is validated and its
// limit clamped before the query runs.
func (s *Service) Search(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Vacancy, int64, error) {
	if err := p.Normalize(); err != nil {
		return nil, 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Search(ctx, f, p)
}

// Create validates and persists a new vacancy. Storage assigns the id and
// parsed_at; the stored record is returned.
func (s *Service) Create(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error) {
	if err := domain.ValidateCreate(v); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdatePartial merges the patch onto the stored record and replaces it
// wholesale. Concurrent updates follow last-writer-wins. The merged
// record is fully re-validated, so a partially invalid document is never
// persisted.
func (s *Service) UpdatePartial(ctx context.Context, id string, p domain.PartialVacancyUpdate) (*domain.Vacancy, error) {
	id, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePatch(&p); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.ErrNotFound
	}

	merged := Merge(*existing, p)
	if err := domain.ValidateCreate(&merged); err != nil {
		return nil, err
	}

	ok, err := s.repo.Replace(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &merged, nil
}

// Delete removes a vacancy permanently. Deleting an unknown id reports
// apperr.ErrNotFound, not success.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
