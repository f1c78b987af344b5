package cli

import (
	"testing"

	"github.com/dmitrijs2005/tempchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateReported(t *testing.T) {
	app := newTestApp(t)
	ctx := t.Context()
	out := captureOutput(t)

	stubInputs(t, []string{"alice"}, "pw")
	require.NoError(t, app.Register(ctx))

	stubInputs(t, []string{"Alice"}, "other")
	err := app.Register(ctx)
	require.ErrorIs(t, err, common.ErrDuplicateUsername)

	assert.Contains(t, (*out)[len(*out)-1], "Registration failed")
}

func TestLogin_BadCredentialsReported(t *testing.T) {
	app := newTestApp(t)
	ctx := t.Context()
	out := captureOutput(t)

	stubInputs(t, []string{"alice"}, "pw")
	require.NoError(t, app.Register(ctx))

	stubInputs(t, []string{"alice"}, "wrong")
	err := app.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn())

	assert.Contains(t, (*out)[len(*out)-1], "Login failed")
}

func TestCommandsRequireLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := t.Context()
	captureOutput(t)

	assert.ErrorIs(t, app.Rooms(ctx), common.ErrNoActiveSession)
	assert.ErrorIs(t, app.Private(ctx, "bob"), common.ErrNoActiveSession)
	assert.ErrorIs(t, app.Send(ctx, "hi"), common.ErrNoActiveSession)
	assert.ErrorIs(t, app.History(ctx), common.ErrNoActiveSession)
}
