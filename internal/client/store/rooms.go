package store

import (
	"context"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/common"
	"github.com/google/uuid"
)

// CreateRoom creates a conversation and selects it as the current room.
//
// Private rooms take exactly one other participant id and are deduplicated:
// if a private room between the current user and that participant already
// exists, its id is returned and no new room is created. Group rooms are
// always created, containing the current user plus every given id; Name is
// expected for groups but not enforced.
//
// Requires an active session (common.ErrNoActiveSession otherwise).
func (s *Store) CreateRoom(ctx context.Context, roomType models.RoomType, otherParticipantIds []string, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return "", common.ErrNoActiveSession
	}

	if roomType == models.RoomTypePrivate {
		if len(otherParticipantIds) != 1 || otherParticipantIds[0] == s.session.Id {
			return "", common.ErrInvalidParticipants
		}
		if existing, ok := s.findPrivateRoomLocked(s.session.Id, otherParticipantIds[0]); ok {
			s.currentRoomId = existing.Id
			s.notifyLocked()
			return existing.Id, nil
		}
	}

	room := models.Room{
		Id:           uuid.NewString(),
		Type:         roomType,
		Name:         name,
		Participants: append([]string{s.session.Id}, otherParticipantIds...),
		CreatedAt:    s.now().UnixMilli(),
	}

	rooms := append(s.rooms, room)
	if err := s.saveDocument(ctx, keyRooms, rooms); err != nil {
		return "", err
	}
	s.rooms = rooms
	s.currentRoomId = room.Id

	s.log.Info(ctx, "room created", "roomId", room.Id, "type", room.Type)
	s.notifyLocked()
	return room.Id, nil
}

// findPrivateRoomLocked looks for the unique private room between two
// account ids. Callers must hold s.mu.
func (s *Store) findPrivateRoomLocked(a, b string) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.Type == models.RoomTypePrivate && len(r.Participants) == 2 &&
			r.HasParticipant(a) && r.HasParticipant(b) {
			return r, true
		}
	}
	return models.Room{}, false
}

// SetCurrentRoom switches the active room pointer. The id is not checked
// against the room list: selecting an unknown id is accepted and simply
// yields an empty message view. An empty id clears the selection.
func (s *Store) SetCurrentRoom(roomId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentRoomId = roomId
	s.notifyLocked()
}

// CurrentRoomId returns the active room id, if any.
func (s *Store) CurrentRoomId() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentRoomId, s.currentRoomId != ""
}

// Rooms lists all rooms in creation order.
func (s *Store) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Room(nil), s.rooms...)
}
