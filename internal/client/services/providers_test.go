package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

type fakeProviderAPI struct {
	providers []models.Provider
	err       error
	failTimes int

	calls int
}

func (f *fakeProviderAPI) Providers(ctx context.Context) ([]models.Provider, error) {
	f.calls++
	if f.err != nil && (f.failTimes == 0 || f.calls <= f.failTimes) {
		return nil, f.err
	}
	return f.providers, nil
}

func (f *fakeProviderAPI) DoctorByID(ctx context.Context, id string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeProviderAPI) DoctorsBySpecialization(ctx context.Context, spec string) ([]models.Provider, error) {
	return models.FilterBySpecialization(f.providers, spec), nil
}

var sampleProviders = []models.Provider{
	{ID: "d1", Name: "Dr. Ahmed", Role: "Doctor", Specialization: "Cardiology"},
	{ID: "d2", Name: "Dr. Lina", Role: "Doctor", Specialization: "Dermatology"},
	{ID: "d3", Name: "Dr. Omar", Role: "Doctor", Specialization: "Cardiology"},
	{ID: "n1", Name: "Nurse Amal", Role: "Nurse", Specialization: ""},
	{ID: "l1", Name: "Central Lab", Role: "Lab", Specialization: "Pathology"},
}

func TestProviderService_ByRole(t *testing.T) {
	svc := NewProviderService(&fakeProviderAPI{providers: sampleProviders}, 2, 0)

	doctors, err := svc.ByRole(context.Background(), "Doctor", "")
	require.NoError(t, err)
	assert.Len(t, doctors, 3)

	cardio, err := svc.ByRole(context.Background(), "Doctor", "Cardiology")
	require.NoError(t, err)
	require.Len(t, cardio, 2)
	assert.Equal(t, "d1", cardio[0].ID)
	assert.Equal(t, "d3", cardio[1].ID)
}

func TestProviderService_Specializations(t *testing.T) {
	svc := NewProviderService(&fakeProviderAPI{providers: sampleProviders}, 2, 0)

	specs, err := svc.Specializations(context.Background(), "Doctor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiology", "Dermatology"}, specs)

	specs, err = svc.Specializations(context.Background(), "Nurse")
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestProviderService_All_RetriesTransientFailure(t *testing.T) {
	api := &fakeProviderAPI{providers: sampleProviders, err: errors.New("timeout"), failTimes: 1}
	svc := NewProviderService(api, 2, 0)

	got, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, 2, api.calls)
}

func TestProviderService_All_GivesUpAfterAttempts(t *testing.T) {
	api := &fakeProviderAPI{err: errors.New("down")}
	svc := NewProviderService(api, 2, 0)

	_, err := svc.All(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, api.calls)
}

func TestProviderService_DoctorByID(t *testing.T) {
	svc := NewProviderService(&fakeProviderAPI{providers: sampleProviders}, 2, 0)

	p, err := svc.DoctorByID(context.Background(), "d2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Lina", p.Name)
}
