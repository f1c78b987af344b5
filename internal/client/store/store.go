// Package store is the single source of truth for the chat client: accounts,
// rooms, the message ledger, the in-memory session and the current-room
// pointer. Every mutating operation synchronously persists the affected
// document and notifies subscribers before returning.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/client/repositories/kv"
	"github.com/dmitrijs2005/tempchat/internal/logging"
)

// Keys of the three persisted documents.
const (
	keyUsers    = "users"
	keyRooms    = "rooms"
	keyMessages = "messages"
)

// DefaultRetentionWindow is how long messages are kept before Initialize
// drops them from the loaded ledger.
const DefaultRetentionWindow = 72 * time.Hour

// usersDocument and messagesDocument mirror the persisted JSON envelopes.
// Rooms are persisted as a bare array.
type usersDocument struct {
	Users []models.Account `json:"users"`
}

type messagesDocument struct {
	Messages []models.Message `json:"messages"`
}

// Snapshot is one consistent, denormalized view of the full store state.
// Slices are copies; mutating them does not affect the store.
type Snapshot struct {
	Accounts      []models.Account
	Rooms         []models.Room
	Messages      []models.Message
	Session       *models.Account
	CurrentRoomId string
	Version       uint64
}

// Store owns the client state and its persistence rules.
//
// All exported methods are safe for concurrent use; a single mutex
// serializes operations, matching the one-command-at-a-time model of the
// UI. Subscribers are invoked synchronously while the store lock is held
// and must not call back into the store.
type Store struct {
	repo kv.Repository
	log  logging.Logger

	retention time.Duration
	now       func() time.Time

	mu            sync.Mutex
	accounts      []models.Account
	rooms         []models.Room
	messages      []models.Message
	session       *models.Account
	currentRoomId string
	version       uint64
	subs          map[int]func(Snapshot)
	nextSubId     int
}

// Option customizes a Store.
type Option func(*Store)

// WithRetentionWindow overrides the message retention window.
func WithRetentionWindow(d time.Duration) Option {
	return func(s *Store) { s.retention = d }
}

// WithClock overrides the wall-clock source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store bound to the given repository and logger.
// Call Initialize before issuing any other operation.
func New(repo kv.Repository, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		log:       log,
		retention: DefaultRetentionWindow,
		now:       time.Now,
		subs:      make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the three persisted documents into memory and prunes
// messages older than the retention window from the loaded ledger.
//
// A malformed document is treated as an empty one with a logged warning,
// so a corrupt store never blocks startup. Pruning here touches memory
// only; durable storage is rewritten the next time a message is appended.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users usersDocument
	if err := s.loadDocument(ctx, keyUsers, &users); err != nil {
		return err
	}
	s.accounts = users.Users

	var rooms []models.Room
	if err := s.loadDocument(ctx, keyRooms, &rooms); err != nil {
		return err
	}
	s.rooms = rooms

	var msgs messagesDocument
	if err := s.loadDocument(ctx, keyMessages, &msgs); err != nil {
		return err
	}
	cutoff := s.now().Add(-s.retention).UnixMilli()
	s.messages = pruneMessages(msgs.Messages, cutoff)
	if dropped := len(msgs.Messages) - len(s.messages); dropped > 0 {
		s.log.Info(ctx, "pruned expired messages", "dropped", dropped)
	}

	s.log.Info(ctx, "store initialized",
		"accounts", len(s.accounts), "rooms", len(s.rooms), "messages", len(s.messages))

	s.notifyLocked()
	return nil
}

// loadDocument reads one persisted document into v. A missing key leaves
// v untouched; a parse failure logs a warning and the store starts from
// whatever could be decoded (nothing, for a corrupt header). Only a
// repository read error is returned.
func (s *Store) loadDocument(ctx context.Context, key string, v any) error {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load document %q: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn(ctx, "malformed persisted document, starting empty", "key", key, "error", err)
	}
	return nil
}

func (s *Store) saveDocument(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}

// Subscribe registers fn to be called with a fresh snapshot after every
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubId
	s.nextSubId++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Accounts:      append([]models.Account(nil), s.accounts...),
		Rooms:         append([]models.Room(nil), s.rooms...),
		Messages:      append([]models.Message(nil), s.messages...),
		CurrentRoomId: s.currentRoomId,
		Version:       s.version,
	}
	if s.session != nil {
		acc := *s.session
		snap.Session = &acc
	}
	return snap
}

// notifyLocked bumps the version and broadcasts the new snapshot to all
// subscribers. Callers must hold s.mu.
func (s *Store) notifyLocked() {
	s.version++
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snap)
	}
}
