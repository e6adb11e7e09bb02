// Package session tracks which user is acting and the per-user defaults.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/homebudget/backend/internal/models"
)

const (
	discoveredAlias = "User_"
	discoveredColor = "#888888"
	fallbackColor   = "#ffffff"
)

// UserStore is the slice of the user data access the session needs.
type UserStore interface {
	All() ([]models.User, error)
	Upsert(user models.User) error
	UpdateField(id uuid.UUID, column string, value any) error
}

// Session is the single authority for "who is acting now". It is
// constructed explicitly and passed to whoever needs it.
//
// The user cache is loaded eagerly and refreshed on every mutating call,
// so reads are never stale relative to this session's own writes. Writes
// from other processes are only picked up on the next refresh.
type Session struct {
	store UserStore

	mu     sync.RWMutex
	users  map[uuid.UUID]models.User
	active uuid.UUID
}

// New builds a session and eagerly loads the known users.
func New(store UserStore) (*Session, error) {
	s := &Session{store: store}
	if err := s.refresh(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Session) refresh() error {
	all, err := s.store.All()
	if err != nil {
		return err
	}

	users := make(map[uuid.UUID]models.User, len(all))
	for _, user := range all {
		users[user.ID] = user
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// Users returns id → alias for every known user, refreshed from the store.
func (s *Session) Users() (map[uuid.UUID]string, error) {
	if err := s.refresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	aliases := make(map[uuid.UUID]string, len(s.users))
	for id, user := range s.users {
		aliases[id] = user.Alias
	}

	return aliases, nil
}

// Alias resolves a single user's display name.
func (s *Session) Alias(id uuid.UUID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	return user.Alias, ok
}

// RegisterDiscoveredUsers upserts every id that is not known yet with a
// generated alias and the default color. Known ids are left untouched, so
// the call is idempotent and safe with overlapping id sets.
func (s *Session) RegisterDiscoveredUsers(ids []uuid.UUID) error {
	if err := s.refresh(); err != nil {
		return err
	}

	var errs []error
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}

		s.mu.RLock()
		_, known := s.users[id]
		s.mu.RUnlock()
		if known {
			continue
		}

		user := models.User{
			ID:       id,
			Alias:    discoveredAlias + id.String()[:4],
			ColorHex: discoveredColor,
		}
		if err := s.store.Upsert(user); err != nil {
			errs = append(errs, fmt.Errorf("registering %s: %w", id, err))
		}
	}

	if err := s.refresh(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Rename changes a user's display alias.
func (s *Session) Rename(id uuid.UUID, alias string) error {
	if err := s.store.UpdateField(id, "alias", alias); err != nil {
		return err
	}

	return s.refresh()
}

// SetColor changes a user's display color.
func (s *Session) SetColor(id uuid.UUID, colorHex string) error {
	if err := s.store.UpdateField(id, "color_hex", colorHex); err != nil {
		return err
	}

	return s.refresh()
}

// Color returns the user's display color, or white for unknown users.
func (s *Session) Color(id uuid.UUID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return user.ColorHex
	}

	return fallbackColor
}

// ActiveUserID returns the selected user. There is no implicit default:
// ok is false until SetActiveUserID was called.
func (s *Session) ActiveUserID() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.active != uuid.Nil
}

// SetActiveUserID selects the acting user.
func (s *Session) SetActiveUserID(id uuid.UUID) {
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
}

// DefaultWalletID returns the user's default wallet, if one is assigned.
func (s *Session) DefaultWalletID(id uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok || user.DefaultWalletID == nil {
		return uuid.Nil, false
	}

	return *user.DefaultWalletID, true
}

// SetDefaultWalletID assigns the user's default wallet.
func (s *Session) SetDefaultWalletID(userID, walletID uuid.UUID) error {
	if err := s.store.UpdateField(userID, "default_wallet_fk", walletID); err != nil {
		return err
	}

	return s.refresh()
}
