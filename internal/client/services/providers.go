package services

import (
	"context"
	"time"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// ProviderAPI is the slice of the api client the provider service consumes.
type ProviderAPI interface {
	Providers(ctx context.Context) ([]models.Provider, error)
	DoctorByID(ctx context.Context, id string) (*models.Provider, error)
	DoctorsBySpecialization(ctx context.Context, spec string) ([]models.Provider, error)
}

// ProviderService serves the provider-selection flows: role filtering and the
// derived specialization set are computed client-side over one fetched list.
type ProviderService struct {
	api      ProviderAPI
	attempts uint64
	delay    time.Duration
}

func NewProviderService(api ProviderAPI, attempts uint64, delay time.Duration) *ProviderService {
	return &ProviderService{api: api, attempts: attempts, delay: delay}
}

// All returns every provider, retrying per the configured policy.
func (s *ProviderService) All(ctx context.Context) ([]models.Provider, error) {
	return fetchWithRetry(ctx, s.attempts, s.delay, s.api.Providers)
}

// ByRole returns providers of one kind, optionally narrowed to a
// specialization.
func (s *ProviderService) ByRole(ctx context.Context, role, spec string) ([]models.Provider, error) {
	list, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterBySpecialization(models.FilterByRole(list, role), spec), nil
}

// Specializations returns the distinct set of specializations available for
// one role.
func (s *ProviderService) Specializations(ctx context.Context, role string) ([]string, error) {
	list, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return models.Specializations(list, role), nil
}

func (s *ProviderService) DoctorByID(ctx context.Context, id string) (*models.Provider, error) {
	return s.api.DoctorByID(ctx, id)
}

func (s *ProviderService) BySpecialization(ctx context.Context, spec string) ([]models.Provider, error) {
	return s.api.DoctorsBySpecialization(ctx, spec)
}
