package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/tempchat/internal/client/models"
	"github.com/dmitrijs2005/tempchat/internal/common"
	"github.com/google/uuid"
)

// Register creates a new account. Usernames are unique under
// case-insensitive comparison; a clash returns common.ErrDuplicateUsername.
// The new account is persisted before it becomes visible.
func (s *Store) Register(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, username) {
			return common.ErrDuplicateUsername
		}
	}

	acc := models.Account{
		Id:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: s.now().UnixMilli(),
	}

	accounts := append(s.accounts, acc)
	if err := s.saveDocument(ctx, keyUsers, usersDocument{Users: accounts}); err != nil {
		return err
	}
	s.accounts = accounts

	s.log.Info(ctx, "account registered", "username", username)
	s.notifyLocked()
	return nil
}

// Login authenticates by case-insensitive username and exact password and
// sets the session on success. On failure the session is left untouched and
// common.ErrInvalidCredentials is returned; the error deliberately does not
// reveal which of the two fields was wrong.
func (s *Store) Login(ctx context.Context, username, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Username, username) && a.Password == password {
			acc := a
			s.session = &acc
			s.log.Info(ctx, "login successful", "username", a.Username)
			s.notifyLocked()
			return a, nil
		}
	}
	return models.Account{}, common.ErrInvalidCredentials
}

// Logout clears the session. It is idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.notifyLocked()
}

// CurrentUser returns the account of the active session, if any.
func (s *Store) CurrentUser() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.Account{}, false
	}
	return *s.session, true
}
