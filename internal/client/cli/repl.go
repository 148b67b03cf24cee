package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Appointments(ctx context.Context, args []string) error
	Book(ctx context.Context) error
	CancelAppointment(ctx context.Context, args []string) error
	Dependents(ctx context.Context) error
	AddDependent(ctx context.Context) error
	DeleteDependent(ctx context.Context, args []string) error
	Providers(ctx context.Context, args []string) error
	Specializations(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the OnCall CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers report their own errors; the loop ignores returned errors
// so that one failed command never kills the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("oncall %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, update-profile, appointments [upcoming|past|cancelled], book, cancel <id>, dependents, adddep, deldep <id>, providers [role], specializations [role], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update-profile":
			_ = a.UpdateProfile(ctx)

		case "appointments":
			_ = a.Appointments(ctx, args)

		case "book":
			_ = a.Book(ctx)

		case "cancel":
			if len(args) == 0 {
				printlnFn("Usage: cancel <id>")
				continue
			}
			_ = a.CancelAppointment(ctx, args)

		case "dependents":
			_ = a.Dependents(ctx)

		case "adddep":
			_ = a.AddDependent(ctx)

		case "deldep":
			if len(args) == 0 {
				printlnFn("Usage: deldep <id>")
				continue
			}
			_ = a.DeleteDependent(ctx, args)

		case "providers":
			_ = a.Providers(ctx, args)

		case "specializations":
			_ = a.Specializations(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
