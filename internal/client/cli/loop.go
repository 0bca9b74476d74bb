package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// cmdIface defines the minimal command surface the loop needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type cmdIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Remove(ctx context.Context) error
	Search(ctx context.Context) error
}

// runLoop reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runLoop(ctx context.Context, a cmdIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	report := func(err error) {
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}

	for {
		fmt.Fprintf(out, "nk %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, add, show, edit, rm, search, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "l", "list":
			report(a.List(ctx))

		case "add":
			report(a.Add(ctx))

		case "show":
			report(a.Show(ctx))

		case "edit":
			report(a.Edit(ctx))

		case "rm", "delete":
			report(a.Remove(ctx))

		case "search":
			report(a.Search(ctx))

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
