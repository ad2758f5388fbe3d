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
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	NewReport(ctx context.Context) error
	Data(ctx context.Context) error
	Summary(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Ask(ctx context.Context) error
	History(ctx context.Context) error
	ForgetHistory(ctx context.Context) error
	Users(ctx context.Context) error
}

// runREPL reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bl> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				msg := "Available commands: (d)ata, new, summary, dashboard, ask, history, forget, logout, exit"
				if a.isAdmin() {
					msg = "Available commands: (d)ata, new, summary, dashboard, ask, history, forget, users, logout, exit"
				}
				printlnFn(msg)
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "new":
			_ = a.NewReport(ctx)

		case "d", "data":
			_ = a.Data(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "history":
			_ = a.History(ctx)

		case "forget":
			_ = a.ForgetHistory(ctx)

		case "users":
			_ = a.Users(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
