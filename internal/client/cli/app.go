// Package cli implements the interactive OnCall client: a REPL over the
// application services, with prompt helpers for text and password input.
package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/oncall-app/oncall-cli/internal/client/api"
	"github.com/oncall-app/oncall-cli/internal/client/config"
	"github.com/oncall-app/oncall-cli/internal/client/services"
	"github.com/oncall-app/oncall-cli/internal/client/session"
	"github.com/oncall-app/oncall-cli/internal/common"
	"github.com/oncall-app/oncall-cli/internal/logging"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	auth         services.AuthService
	appointments *services.AppointmentService
	dependents   *services.DependentService
	providers    *services.ProviderService

	reader  *bufio.Reader
	civilID string
	signed  bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(db)
	apiClient := api.New(c.BaseURL, c.Timeout, store, log)

	app := &App{
		config:       c,
		log:          log,
		auth:         services.NewAuthService(apiClient, store),
		appointments: services.NewAppointmentService(apiClient),
		dependents:   services.NewDependentService(apiClient, c.RetryAttempts, c.RetryDelay),
		providers:    services.NewProviderService(apiClient, c.RetryAttempts, c.RetryDelay),
		reader:       bufio.NewReader(os.Stdin),
	}

	// A token persisted by a previous run restores the logged-in prompt.
	if ok, err := app.auth.LoggedIn(ctx); err == nil && ok {
		app.signed = true
		if id, err := store.CivilID(ctx); err == nil {
			app.civilID = id
		}
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to OnCall CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.signed
}

func (a *App) getStatus() string {
	if !a.signed {
		return ""
	}
	if a.civilID != "" {
		return "(" + a.civilID + ")"
	}
	return "(signed in)"
}

// checkSession drops the local logged-in state when a command came back with a
// 401. The token itself is already cleared by the transport layer.
func (a *App) checkSession(err error) error {
	if errors.Is(err, common.ErrUnauthorized) {
		a.signed = false
		a.civilID = ""
		printlnFn("Session expired, please log in again.")
	}
	return err
}
