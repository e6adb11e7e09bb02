package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity transactions are attributed to. It is not an
// authentication principal; the active user is a local selection.
//
// The ID is the natural key discovered from transaction history, so it is
// never generated here.
type User struct {
	ID              uuid.UUID  `gorm:"primaryKey"`
	Alias           string     `gorm:"column:alias"`
	ColorHex        string     `gorm:"column:color_hex"`
	DefaultWalletID *uuid.UUID `gorm:"column:default_wallet_fk"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
