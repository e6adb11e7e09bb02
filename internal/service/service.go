// Package service orchestrates the repositories, the lookup cache, the
// session and the object store into the operations the application
// performs. It is the only place multiple store calls are combined and
// the only place the domain invariants are enforced.
package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/homebudget/backend/internal/cache"
	"github.com/homebudget/backend/internal/repository"
	"github.com/homebudget/backend/internal/session"
	"github.com/homebudget/backend/internal/storage"
)

var (
	ErrNoActiveUser      = errors.New("no active user selected")
	ErrAmountNotPositive = errors.New("amount must be larger than zero")
	ErrNoCategoryForType = errors.New("no category exists for the requested type")
	ErrWalletInUse       = errors.New("wallet is referenced by transactions")
	ErrCategoryInUse     = errors.New("category is referenced by transactions")
	ErrCategoryExists    = errors.New("subcategory already exists for this group and type")
	ErrTagEmpty          = errors.New("goal tags must not be empty")
)

// Service is the budget/session orchestrator.
type Service struct {
	transactions *repository.Transactions
	categories   *repository.Categories
	wallets      *repository.Wallets
	goals        *repository.Goals
	session      *session.Session
	cache        *cache.Cache
	store        storage.ObjectStore
	prefsPath    string
}

// New wires a service. The session and object store are injected so the
// caller controls their lifecycle.
func New(db *gorm.DB, sess *session.Session, store storage.ObjectStore, prefsPath string) *Service {
	return &Service{
		transactions: repository.NewTransactions(db),
		categories:   repository.NewCategories(db),
		wallets:      repository.NewWallets(db),
		goals:        repository.NewGoals(db),
		session:      sess,
		cache:        cache.New(),
		store:        store,
		prefsPath:    prefsPath,
	}
}

// Session exposes the injected session.
func (s *Service) Session() *session.Session {
	return s.session
}

// ReloadCache re-fetches the full category list and the active-wallet map
// and swaps the snapshot in atomically. Callers invoke it after any
// mutation that could affect cached lookups; nothing reloads implicitly.
func (s *Service) ReloadCache() error {
	categories, err := s.categories.All()
	if err != nil {
		return err
	}

	wallets, err := s.wallets.AllActive()
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(wallets))
	for _, wallet := range wallets {
		names[wallet.ID] = wallet.Name
	}

	s.cache.Store(&cache.Snapshot{Categories: categories, WalletNames: names})
	return nil
}

// ActiveUserID is a convenience passthrough to the session.
func (s *Service) ActiveUserID() (uuid.UUID, bool) {
	return s.session.ActiveUserID()
}

func logErr(err error, operation string) {
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("operation failed")
	}
}
