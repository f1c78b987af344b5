// Package kv is the persistence adapter: it reads and writes the three
// independent JSON documents (accounts, rooms, messages) of the local store,
// keyed by string. It is pure serialize/deserialize plumbing with no business
// logic. Each document is written independently; there is no atomicity across
// keys, which the store layer accepts as a documented limitation.
package kv

import "context"

// Repository stores opaque documents by key.
type Repository interface {
	// Get returns the document stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the document under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
