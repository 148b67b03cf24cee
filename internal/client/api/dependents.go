package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// Dependents fetches the caller's persons-in-care. The backend wraps the
// list in a "dependents" field on some builds and returns a bare array on
// others; both are accepted.
func (c *Client) Dependents(ctx context.Context) ([]models.Dependent, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/dependents", nil, &raw, "failed to fetch dependents"); err != nil {
		return nil, err
	}

	var list []models.Dependent
	if json.Unmarshal(raw, &list) == nil && list != nil {
		return list, nil
	}

	var wrapper struct {
		Dependents []models.Dependent `json:"dependents"`
	}
	if json.Unmarshal(raw, &wrapper) == nil && wrapper.Dependents != nil {
		return wrapper.Dependents, nil
	}

	return []models.Dependent{}, nil
}

// AddDependent creates a person-in-care profile. No field validation happens
// here; required-field checks belong to the layer collecting the input.
func (c *Client) AddDependent(ctx context.Context, dep models.Dependent) (*models.Dependent, error) {
	var created models.Dependent
	if err := c.do(ctx, http.MethodPost, "/dependents", dep, &created, "failed to add dependent"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDependent sends a partial update for a dependent.
func (c *Client) UpdateDependent(ctx context.Context, id string, updates map[string]any) error {
	return c.do(ctx, http.MethodPut, "/dependents/"+url.PathEscape(id), updates, nil, "failed to update dependent")
}

// DeleteDependent removes a dependent by id.
func (c *Client) DeleteDependent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/dependents/"+url.PathEscape(id), nil, nil, "failed to delete dependent")
}
