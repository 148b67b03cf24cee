package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oncall-app/oncall-cli/internal/client/models"
	"github.com/oncall-app/oncall-cli/internal/common"
)

type loginRequest struct {
	CivilID  string `json:"civilID"`
	Password string `json:"password"`
}

// Login authenticates a patient by civil ID and password. On success the
// token from the response (whichever of "token"/"accessToken" the backend
// used) is persisted in the session store, and the full response body is
// returned so the caller can display profile data from it.
func (c *Client) Login(ctx context.Context, civilID, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{CivilID: civilID, Password: password}, &resp, "login failed")
	if err != nil {
		return nil, err
	}

	if tok := resp.BearerToken(); tok != "" {
		if err := c.session.Save(ctx, tok); err != nil {
			return nil, fmt.Errorf("persist session token: %w", err)
		}
	}
	return &resp, nil
}

// Register creates a patient account. The role marker is forced to "Patient"
// regardless of what the caller put in the payload. Registration does not
// log the patient in.
func (c *Client) Register(ctx context.Context, patient models.PatientInfo) (*models.AuthResponse, error) {
	patient.Role = common.RolePatient

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", patient, &resp, "registration failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the logged-in patient's profile.
func (c *Client) Profile(ctx context.Context) (*models.Patient, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &raw, "failed to fetch profile"); err != nil {
		return nil, err
	}
	return normalizeProfile(raw)
}

// UpdateProfile sends a partial update and returns the profile the backend
// responded with. The client never patches its local copy; screens re-fetch.
func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (*models.Patient, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/auth/profile", updates, &raw, "failed to update profile"); err != nil {
		return nil, err
	}
	return normalizeProfile(raw)
}

// Logout notifies the backend on a best-effort basis (a failed call is
// logged, not surfaced) and unconditionally clears the local session. Local
// session termination must succeed even when the server is unreachable.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, "logout failed"); err != nil {
		c.log.Warn(ctx, "logout call failed, clearing local session anyway", "error", err)
	}
	return c.session.Clear(ctx)
}

// normalizeProfile unwraps the profile from whichever nesting the backend
// used, in documented priority order: data.patient, then data, then the
// top-level object itself.
func normalizeProfile(raw json.RawMessage) (*models.Patient, error) {
	payload := raw

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(raw, &envelope) == nil && isPresent(envelope.Data) {
		payload = envelope.Data

		var inner struct {
			Patient json.RawMessage `json:"patient"`
		}
		if json.Unmarshal(payload, &inner) == nil && isPresent(inner.Patient) {
			payload = inner.Patient
		}
	}

	var p models.Patient
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
