package store

import (
	"context"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/common"
	"github.com/google/uuid"
)

// SendMessage appends a message to the ledger, attributed to the current
// user and bound to the current room, and persists the full (pruned)
// ledger. This is the point where retention pruning done by Initialize
// reaches durable storage.
//
// Requires an active session and a selected room; otherwise the ledger is
// left unchanged and common.ErrNoActiveSession or common.ErrNoActiveRoom
// is returned.
func (s *Store) SendMessage(ctx context.Context, content string, msgType models.MessageType, imageUrl string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.Message{}, common.ErrNoActiveSession
	}
	if s.currentRoomId == "" {
		return models.Message{}, common.ErrNoActiveRoom
	}

	msg := models.Message{
		Id:        uuid.NewString(),
		Sender:    s.session.Username,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
		Type:      msgType,
		ImageUrl:  imageUrl,
		RoomId:    s.currentRoomId,
	}

	messages := append(s.messages, msg)
	if err := s.saveDocument(ctx, keyMessages, messagesDocument{Messages: messages}); err != nil {
		return models.Message{}, err
	}
	s.messages = messages

	s.notifyLocked()
	return msg, nil
}

// MessagesForRoom returns the messages of one room in ledger order, which
// under normal use is chronological order.
func (s *Store) MessagesForRoom(roomId string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Message
	for _, m := range s.messages {
		if m.RoomId == roomId {
			result = append(result, m)
		}
	}
	return result
}

// pruneMessages keeps messages strictly newer than cutoff. A message whose
// timestamp equals the cutoff is dropped.
func pruneMessages(msgs []models.Message, cutoff int64) []models.Message {
	var kept []models.Message
	for _, m := range msgs {
		if m.Timestamp > cutoff {
			kept = append(kept, m)
		}
	}
	return kept
}
