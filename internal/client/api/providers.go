package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// Providers fetches every provider (doctors, nurses, labs). Role filtering
// and the derived specialization set are computed client-side from this
// list; see the models package.
func (c *Client) Providers(ctx context.Context) ([]models.Provider, error) {
	var list []models.Provider
	if err := c.do(ctx, http.MethodGet, "/api/providers/", nil, &list, "failed to fetch providers"); err != nil {
		return nil, err
	}
	return list, nil
}

// DoctorByID fetches a single doctor.
func (c *Client) DoctorByID(ctx context.Context, id string) (*models.Provider, error) {
	var p models.Provider
	if err := c.do(ctx, http.MethodGet, "/doctors/"+url.PathEscape(id), nil, &p, "failed to fetch doctor"); err != nil {
		return nil, err
	}
	return &p, nil
}

// DoctorsBySpecialization fetches the doctors holding one specialization.
func (c *Client) DoctorsBySpecialization(ctx context.Context, spec string) ([]models.Provider, error) {
	var list []models.Provider
	if err := c.do(ctx, http.MethodGet, "/doctors/specialization/"+url.PathEscape(spec), nil, &list, "failed to fetch doctors by specialization"); err != nil {
		return nil, err
	}
	return list, nil
}
