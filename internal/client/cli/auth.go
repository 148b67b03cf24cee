package cli

import (
	"context"
	"os"

	"github.com/oncall-app/oncall-cli/internal/client/models"
	"github.com/oncall-app/oncall-cli/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	civilID, err := GetSimpleText(a.reader, "Enter civil ID", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, civilID, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	if resp.BearerToken() == "" {
		// Some backend builds answer 200 with a message and no token.
		printlnFn("Login did not return a session:", resp.Message)
		return nil
	}

	a.signed = true
	a.civilID = civilID
	printlnFn("Logged in.")
	return nil
}

func (a *App) Register(ctx context.Context) error {
	var p models.PatientInfo
	var err error

	if p.Name, err = GetSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}
	if p.Email, err = GetSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if p.Phone, err = GetSimpleText(a.reader, "Enter phone", os.Stdout); err != nil {
		return err
	}
	if p.CivilID, err = GetSimpleText(a.reader, "Enter civil ID", os.Stdout); err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)
	p.Password = string(password)

	if err := a.auth.Register(ctx, p); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registered. You can now log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.signed = false
	a.civilID = ""
	printlnFn("Logged out.")
	return nil
}
