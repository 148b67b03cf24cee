package services

import (
	"context"
	"time"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// DependentAPI is the slice of the api client the dependent service consumes.
type DependentAPI interface {
	Dependents(ctx context.Context) ([]models.Dependent, error)
	AddDependent(ctx context.Context, dep models.Dependent) (*models.Dependent, error)
	UpdateDependent(ctx context.Context, id string, updates map[string]any) error
	DeleteDependent(ctx context.Context, id string) error
}

// DependentService manages persons-in-care. The list fetch retries per the
// configured policy; mutations run exactly once.
type DependentService struct {
	api      DependentAPI
	attempts uint64
	delay    time.Duration
}

func NewDependentService(api DependentAPI, attempts uint64, delay time.Duration) *DependentService {
	return &DependentService{api: api, attempts: attempts, delay: delay}
}

func (s *DependentService) List(ctx context.Context) ([]models.Dependent, error) {
	return fetchWithRetry(ctx, s.attempts, s.delay, s.api.Dependents)
}

func (s *DependentService) Add(ctx context.Context, dep models.Dependent) (*models.Dependent, error) {
	return s.api.AddDependent(ctx, dep)
}

func (s *DependentService) Update(ctx context.Context, id string, updates map[string]any) error {
	return s.api.UpdateDependent(ctx, id, updates)
}

func (s *DependentService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteDependent(ctx, id)
}
