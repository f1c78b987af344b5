package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/common"
)

// Rooms lists all conversations in creation order, marking the current one.
func (a *App) Rooms(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	rooms := a.store.Rooms()
	if len(rooms) == 0 {
		printlnFn("No rooms yet. Use 'private <username>' or 'group <name> <username>...'")
		return nil
	}

	for n, r := range rooms {
		marker := "  "
		if r.Id == a.snap.CurrentRoomId {
			marker = "* "
		}
		printlnFn(fmt.Sprintf("%s%d. %s (%s)", marker, n+1, a.roomLabel(r.Id), r.Type))
	}
	return nil
}

// Private opens (or creates) the private chat with the named user.
func (a *App) Private(ctx context.Context, username string) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	other, ok := a.findAccount(username)
	if !ok {
		printlnFn("Unknown user:", username)
		return common.ErrInvalidParticipants
	}

	if _, err := a.store.CreateRoom(ctx, models.RoomTypePrivate, []string{other.Id}, ""); err != nil {
		printlnFn("Could not open chat:", err)
		return err
	}

	printlnFn("Opened private chat with " + other.Username)
	return nil
}

// Group creates a named group chat with the given members.
func (a *App) Group(ctx context.Context, name string, usernames []string) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	var ids []string
	for _, u := range usernames {
		acc, ok := a.findAccount(u)
		if !ok {
			printlnFn("Unknown user:", u)
			return common.ErrInvalidParticipants
		}
		ids = append(ids, acc.Id)
	}

	if _, err := a.store.CreateRoom(ctx, models.RoomTypeGroup, ids, name); err != nil {
		printlnFn("Could not create group:", err)
		return err
	}

	printlnFn("Created group " + name)
	return nil
}

// Open selects a room by its number in the 'rooms' listing.
func (a *App) Open(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	rooms := a.store.Rooms()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(rooms) {
		printlnFn("No such room:", arg)
		return fmt.Errorf("no such room: %s", arg)
	}

	a.store.SetCurrentRoom(rooms[n-1].Id)
	printlnFn("Switched to " + a.roomLabel(rooms[n-1].Id))
	return nil
}

// findAccount resolves an account by case-insensitive username.
func (a *App) findAccount(username string) (models.Account, bool) {
	for _, acc := range a.snap.Accounts {
		if strings.EqualFold(acc.Username, username) {
			return acc, true
		}
	}
	return models.Account{}, false
}

// roomLabel renders a human-readable name for a room: the group name, or
// the other participant's username for private chats.
func (a *App) roomLabel(roomId string) string {
	for _, r := range a.snap.Rooms {
		if r.Id != roomId {
			continue
		}
		if r.Type == models.RoomTypeGroup {
			if r.Name == "" {
				return "(unnamed group)"
			}
			return r.Name
		}
		for _, p := range r.Participants {
			if a.snap.Session != nil && p == a.snap.Session.Id {
				continue
			}
			for _, acc := range a.snap.Accounts {
				if acc.Id == p {
					return "@" + acc.Username
				}
			}
		}
		return r.Id
	}
	return roomId
}
