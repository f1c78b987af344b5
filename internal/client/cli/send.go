package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/common"
)

// Send appends a text message to the current room.
func (a *App) Send(ctx context.Context, text string) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	if _, err := a.store.SendMessage(ctx, text, models.MessageTypeText, ""); err != nil {
		printlnFn("Could not send:", err)
		return err
	}
	return nil
}

// SendImage reads an image file, encodes it as a data URI and appends it
// as an image message to the current room, mirroring the drag-and-drop
// intake of the graphical client.
func (a *App) SendImage(ctx context.Context, path string) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err)
		return err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		printlnFn("Not an image:", path)
		return fmt.Errorf("not an image: %s", path)
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	if _, err := a.store.SendMessage(ctx, "Shared an image", models.MessageTypeImage, uri); err != nil {
		printlnFn("Could not send:", err)
		return err
	}
	return nil
}

// History prints the messages of the current room in ledger order.
func (a *App) History(ctx context.Context) error {
	if !a.requireLogin() {
		return common.ErrNoActiveSession
	}
	if a.snap.CurrentRoomId == "" {
		printlnFn(common.ErrNoActiveRoom.Error() + "; use 'open <n>' first")
		return common.ErrNoActiveRoom
	}

	msgs := a.store.MessagesForRoom(a.snap.CurrentRoomId)
	if len(msgs) == 0 {
		printlnFn("No messages yet.")
		return nil
	}

	for _, m := range msgs {
		ts := time.UnixMilli(m.Timestamp).Format("15:04")
		body := m.Content
		if m.Type == models.MessageTypeImage {
			body = body + " [image]"
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s", ts, m.Sender, body))
	}
	return nil
}
