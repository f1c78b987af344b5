// Package models defines the chat domain types persisted by the local store.
//
// Timestamps are Unix milliseconds to stay compatible with the persisted
// JSON documents produced by earlier builds of the client.
package models

// Account is a registered identity. Accounts are created on registration,
// never mutated and never deleted. Identity is the Id; lookups go through
// the lower-cased Username.
//
// Password is stored in plain text. Real credential security is explicitly
// out of scope for this single-device client.
type Account struct {
	Id        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt int64  `json:"createdAt"`
}
