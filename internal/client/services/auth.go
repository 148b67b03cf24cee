package services

import (
	"context"
	"time"

	"github.com/oncall-app/oncall-cli/internal/client/models"
	"github.com/oncall-app/oncall-cli/internal/client/session"
)

// AuthAPI is the slice of the api client the auth service consumes.
type AuthAPI interface {
	Login(ctx context.Context, civilID, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, patient models.PatientInfo) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.Patient, error)
	UpdateProfile(ctx context.Context, updates map[string]any) (*models.Patient, error)
	Logout(ctx context.Context) error
}

// AuthService wraps authentication and profile operations for the CLI.
//
// Contract:
//   - Login: authenticate; on success the token is persisted by the api layer
//     and the civil ID is recorded for the prompt.
//   - Register: create an account; does not log in.
//   - Logout: best-effort server notification, unconditional local teardown.
type AuthService interface {
	Login(ctx context.Context, civilID string, password []byte) (*models.AuthResponse, error)
	Register(ctx context.Context, patient models.PatientInfo) error
	Profile(ctx context.Context) (*models.Patient, error)
	UpdateProfile(ctx context.Context, updates map[string]any) (*models.Patient, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) (bool, error)
	SessionExpiry(ctx context.Context) (time.Time, error)
}

type authService struct {
	api   AuthAPI
	store *session.Store
}

// NewAuthService constructs an AuthService bound to the given api client and
// session store.
func NewAuthService(api AuthAPI, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

func (a *authService) Login(ctx context.Context, civilID string, password []byte) (*models.AuthResponse, error) {
	resp, err := a.api.Login(ctx, civilID, string(password))
	if err != nil {
		return nil, err
	}

	if resp.BearerToken() != "" {
		if err := a.store.SaveCivilID(ctx, civilID); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (a *authService) Register(ctx context.Context, patient models.PatientInfo) error {
	_, err := a.api.Register(ctx, patient)
	return err
}

func (a *authService) Profile(ctx context.Context) (*models.Patient, error) {
	return a.api.Profile(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, updates map[string]any) (*models.Patient, error) {
	return a.api.UpdateProfile(ctx, updates)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.api.Logout(ctx)
}

// LoggedIn reports whether a persisted session exists, so a restart can pick
// up where the last run left off.
func (a *authService) LoggedIn(ctx context.Context) (bool, error) {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

// SessionExpiry reports when the stored token expires, for display only.
// Zero time means the token is opaque or carries no expiry.
func (a *authService) SessionExpiry(ctx context.Context) (time.Time, error) {
	return a.store.ExpiresAt(ctx)
}
