package models

// MessageType classifies a message payload.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
)

// Message is one immutable entry of the ledger. Sender carries the author's
// username (not the account id), matching the historical persisted format.
// ImageUrl is a data URI and is present only for image messages.
type Message struct {
	Id        string      `json:"id"`
	Sender    string      `json:"sender"`
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"`
	Type      MessageType `json:"type"`
	ImageUrl  string      `json:"imageUrl,omitempty"`
	RoomId    string      `json:"roomId"`
}
