package models

// RoomType classifies a conversation container.
type RoomType string

const (
	RoomTypePrivate RoomType = "private"
	RoomTypeGroup   RoomType = "group"
)

// Room is a private (2-party) or group (n-party) conversation.
//
// A private room always holds exactly two distinct participant ids, and at
// most one private room exists per pair of accounts; both are enforced at
// creation time, not as stored constraints. Participants are fixed at
// creation, there is no membership-change operation.
type Room struct {
	Id           string   `json:"id"`
	Type         RoomType `json:"type"`
	Name         string   `json:"name,omitempty"`
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"createdAt"`
}

// HasParticipant reports whether the account id is a member of the room.
func (r Room) HasParticipant(accountId string) bool {
	for _, p := range r.Participants {
		if p == accountId {
			return true
		}
	}
	return false
}
