// Package common defines shared constants and sentinel errors used across
// the tempchat client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Identity errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Errors for operations issued without the required context.
	// These used to be silent no-ops; surfacing them lets callers tell
	// "nothing happened" from "succeeded".
	ErrNoActiveSession = errors.New("no active session")
	ErrNoActiveRoom    = errors.New("no active room")

	// Room creation errors.
	ErrInvalidParticipants = errors.New("invalid participants")
)
