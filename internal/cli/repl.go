package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowMain()
	ShowDashboard(ctx context.Context)
	Verify(ctx context.Context, serviceName string) error
	ListServices()
}

// runREPL starts a simple read–eval–print loop for the Pietos CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - login            — authenticate
//	  - register         — create an account
//	  - home             — show the main page
//	  - dashboard        — opens the login form first
//	  - services         — list verification services
//	  - verify <service> — run (or defer) a verification
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - same, plus logout; dashboard shows the account dashboard
//
// Any errors returned by command handlers are ignored here; handlers render
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pietos %s> ", statusFn()))
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
				printlnFn("Available commands: home, dashboard, services, verify <service>, logout, exit")
			} else {
				printlnFn("Available commands: home, dashboard, services, verify <service>, login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home", "main":
			a.ShowMain()

		case "dashboard":
			a.ShowDashboard(ctx)

		case "services":
			a.ListServices()

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <service>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
