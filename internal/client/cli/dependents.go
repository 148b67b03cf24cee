package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

func (a *App) Dependents(ctx context.Context) error {
	list, err := a.dependents.List(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return a.checkSession(err)
	}

	if len(list) == 0 {
		printlnFn("No dependents.")
		return nil
	}
	for _, d := range list {
		printlnFn(fmt.Sprintf("%s  %-20s  age %-3s  %s", d.ID, d.Name, orNA(d.Age), orNA(d.Relationship)))
	}
	return nil
}

func (a *App) AddDependent(ctx context.Context) error {
	var d models.Dependent
	var err error

	if d.Name, err = GetSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return err
	}
	if d.Age, err = GetSimpleText(a.reader, "Enter age", os.Stdout); err != nil {
		return err
	}
	if d.Gender, err = GetSimpleText(a.reader, "Enter gender", os.Stdout); err != nil {
		return err
	}
	if d.ContactNumber, err = GetSimpleText(a.reader, "Enter contact number", os.Stdout); err != nil {
		return err
	}
	if d.Relationship, err = GetSimpleText(a.reader, "Enter relationship", os.Stdout); err != nil {
		return err
	}
	if d.MedicalHistory, err = GetSimpleText(a.reader, "Medical history (optional)", os.Stdout); err != nil {
		return err
	}
	if d.SpecialCareInstructions, err = GetSimpleText(a.reader, "Special care instructions (optional)", os.Stdout); err != nil {
		return err
	}

	created, err := a.dependents.Add(ctx, d)
	if err != nil {
		printlnFn("Add failed:", err.Error())
		return a.checkSession(err)
	}

	printlnFn("Dependent added:", created.ID)
	return nil
}

func (a *App) DeleteDependent(ctx context.Context, args []string) error {
	if err := a.dependents.Delete(ctx, args[0]); err != nil {
		printlnFn("Delete failed:", err.Error())
		return a.checkSession(err)
	}
	printlnFn("Dependent removed.")
	return nil
}
