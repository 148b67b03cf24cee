package cli

import (
	"context"
	"fmt"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// Providers lists providers, optionally filtered by role and specialization:
// providers [role [specialization]].
func (a *App) Providers(ctx context.Context, args []string) error {
	role, spec := "", ""
	if len(args) > 0 {
		role = args[0]
	}
	if len(args) > 1 {
		spec = args[1]
	}

	var list []models.Provider
	var err error
	if role == "" {
		list, err = a.providers.All(ctx)
	} else {
		list, err = a.providers.ByRole(ctx, role, spec)
	}
	if err != nil {
		printlnFn("error:", err.Error())
		return a.checkSession(err)
	}

	if len(list) == 0 {
		printlnFn("No providers found.")
		return nil
	}
	for _, p := range list {
		printlnFn(fmt.Sprintf("%s  %-25s  %-8s  %s", p.ID, p.Name, p.Role, orNA(p.Specialization)))
	}
	return nil
}

// Specializations prints the distinct specializations for a role (Doctor by
// default).
func (a *App) Specializations(ctx context.Context, args []string) error {
	role := "Doctor"
	if len(args) > 0 {
		role = args[0]
	}

	specs, err := a.providers.Specializations(ctx, role)
	if err != nil {
		printlnFn("error:", err.Error())
		return a.checkSession(err)
	}

	if len(specs) == 0 {
		printlnFn("No specializations for role", role)
		return nil
	}
	for _, s := range specs {
		printlnFn("-", s)
	}
	return nil
}
