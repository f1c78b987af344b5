package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records REPL dispatches.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (s *stubExec) isLoggedIn() bool                   { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }
func (s *stubExec) Rooms(ctx context.Context) error    { return s.record("rooms") }
func (s *stubExec) Private(ctx context.Context, username string) error {
	return s.record("private", username)
}
func (s *stubExec) Group(ctx context.Context, name string, usernames []string) error {
	return s.record("group", append([]string{name}, usernames...)...)
}
func (s *stubExec) Open(ctx context.Context, arg string) error { return s.record("open", arg) }
func (s *stubExec) History(ctx context.Context) error          { return s.record("history") }
func (s *stubExec) Send(ctx context.Context, text string) error {
	return s.record("send", text)
}
func (s *stubExec) SendImage(ctx context.Context, path string) error {
	return s.record("sendimage", path)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	return &lines
}

func runScript(t *testing.T, a execIface, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{loggedIn: true}

	runScript(t, stub, strings.Join([]string{
		"register",
		"login",
		"rooms",
		"private bob",
		"group team bob carol",
		"open 2",
		"history",
		"send hello there",
		"sendimage cat.png",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"register",
		"login",
		"rooms",
		"private bob",
		"group team bob carol",
		"open 2",
		"history",
		"send hello there",
		"sendimage cat.png",
		"logout",
	}, stub.calls)
}

func TestRunREPL_UsageMessages(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{loggedIn: true}

	runScript(t, stub, "private\ngroup team\nopen\nsend\nsendimage\nexit")

	assert.Empty(t, stub.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Usage: private <username>")
	assert.Contains(t, joined, "Usage: group <name> <username>...")
	assert.Contains(t, joined, "Usage: open <number>")
	assert.Contains(t, joined, "Usage: send <text>")
	assert.Contains(t, joined, "Usage: sendimage <path>")
}

func TestRunREPL_UnknownCommandAndHelp(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{}

	runScript(t, stub, "frobnicate\nhelp\nexit")

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Contains(t, joined, "register, login, exit")
}

func TestRunREPL_HelpWhenLoggedIn(t *testing.T) {
	out := captureOutput(t)
	stub := &stubExec{loggedIn: true}

	runScript(t, stub, "help\nexit")

	assert.Contains(t, strings.Join(*out, "\n"), "rooms")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}

	runScript(t, stub, "register")

	assert.Equal(t, []string{"register"}, stub.calls)
}
