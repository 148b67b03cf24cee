package cli

import (
	"context"
	"os"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.auth.Profile(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return a.checkSession(err)
	}

	printlnFn("Name:    ", orNA(p.Name))
	printlnFn("Email:   ", orNA(p.Email))
	printlnFn("Phone:   ", orNA(p.Phone))
	printlnFn("Civil ID:", orNA(p.CivilID))

	// Display only; the token stays opaque to every request path.
	if exp, err := a.auth.SessionExpiry(ctx); err == nil && !exp.IsZero() {
		printlnFn("Session expires:", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// UpdateProfile collects the editable fields one by one; an empty answer
// leaves the field untouched.
func (a *App) UpdateProfile(ctx context.Context) error {
	updates := map[string]any{}

	for _, f := range []struct{ key, prompt string }{
		{"name", "New name (empty to keep)"},
		{"email", "New email (empty to keep)"},
		{"phone", "New phone (empty to keep)"},
	} {
		v, err := GetSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		if v != "" {
			updates[f.key] = v
		}
	}

	if len(updates) == 0 {
		printlnFn("Nothing to update.")
		return nil
	}

	if _, err := a.auth.UpdateProfile(ctx, updates); err != nil {
		printlnFn("Update failed:", err.Error())
		return a.checkSession(err)
	}
	printlnFn("Profile updated.")
	return nil
}
