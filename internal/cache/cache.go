// Package cache holds the process-local lookup data for categories and
// active wallets.
//
// There is no partial invalidation and no TTL: the snapshot is rebuilt
// wholesale and swapped in as a single atomic update, so readers never
// observe a half-updated view. Staying fresh is the callers' job — they
// reload after every mutation that could affect the lookup data.
package cache

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/homebudget/backend/internal/models"
)

// Snapshot is one immutable view of the lookup data. Readers must not
// mutate it; a reload replaces it entirely.
type Snapshot struct {
	Categories  []models.Category
	WalletNames map[uuid.UUID]string
}

// CategoryBySubcategoryID returns the category a transaction references.
func (s *Snapshot) CategoryBySubcategoryID(id int64) (models.Category, bool) {
	for _, category := range s.Categories {
		if category.SubcategoryID == id {
			return category, true
		}
	}
	return models.Category{}, false
}

// FirstCategoryByType returns the first cached category of the given type.
func (s *Snapshot) FirstCategoryByType(t models.Type) (models.Category, bool) {
	for _, category := range s.Categories {
		if category.Type == t {
			return category, true
		}
	}
	return models.Category{}, false
}

// WalletName resolves a wallet id against the active-wallet map.
func (s *Snapshot) WalletName(id uuid.UUID) (string, bool) {
	name, ok := s.WalletNames[id]
	return name, ok
}

// Cache is the atomically swapped snapshot holder.
type Cache struct {
	current atomic.Pointer[Snapshot]
}

func New() *Cache {
	c := &Cache{}
	c.current.Store(&Snapshot{WalletNames: map[uuid.UUID]string{}})
	return c
}

// Load returns the current snapshot. Never nil.
func (c *Cache) Load() *Snapshot {
	return c.current.Load()
}

// Store swaps in a fully built snapshot.
func (c *Cache) Store(snapshot *Snapshot) {
	c.current.Store(snapshot)
}
