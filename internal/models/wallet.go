package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet is a named money container owned by exactly one user.
//
// Whether a wallet is the owner's default is tracked on the user record,
// not here.
type Wallet struct {
	DefaultModel
	Name     string    `gorm:"column:wallet_name"`
	OwnerID  uuid.UUID `gorm:"column:owner_fk"`
	IsActive bool      `gorm:"column:is_active"`
}

// BeforeSave trims whitespace from the name.
func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	return nil
}
