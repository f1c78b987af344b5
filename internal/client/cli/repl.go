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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Rooms(ctx context.Context) error
	Private(ctx context.Context, username string) error
	Group(ctx context.Context, name string, usernames []string) error
	Open(ctx context.Context, arg string) error
	History(ctx context.Context) error
	Send(ctx context.Context, text string) error
	SendImage(ctx context.Context, path string) error
}

// runREPL starts a simple read–eval–print loop for the tempchat CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("tc %s> ", statusFn())
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
				printlnFn("Available commands: rooms, private <user>, group <name> <user>..., open <n>, history, send <text>, sendimage <path>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "rooms":
			_ = a.Rooms(ctx)

		case "private":
			if len(args) != 1 {
				printlnFn("Usage: private <username>")
				continue
			}
			_ = a.Private(ctx, args[0])

		case "group":
			if len(args) < 2 {
				printlnFn("Usage: group <name> <username>...")
				continue
			}
			_ = a.Group(ctx, args[0], args[1:])

		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <number>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "history":
			_ = a.History(ctx)

		case "send":
			if len(args) == 0 {
				printlnFn("Usage: send <text>")
				continue
			}
			_ = a.Send(ctx, strings.Join(args, " "))

		case "sendimage":
			if len(args) != 1 {
				printlnFn("Usage: sendimage <path>")
				continue
			}
			_ = a.SendImage(ctx, args[0])

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
