package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/tempchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// The account is not logged in automatically; the user is told to log in.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Register(ctx, username, string(password)); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the store.
// The error message never reveals whether the username or the password
// was wrong. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.store.Login(ctx, username, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	printlnFn("Logged in as " + acc.Username)
	return nil
}

// Logout clears the session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout()
	printlnFn("Logged out.")
	return nil
}

// requireLogin prints a hint when no session is active.
func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn(common.ErrNoActiveSession.Error() + "; use 'login' first")
		return false
	}
	return true
}
