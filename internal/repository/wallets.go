package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homebudget/backend/internal/models"
)

// Wallets is the data access for money containers.
type Wallets struct {
	db *gorm.DB
}

func NewWallets(db *gorm.DB) *Wallets {
	return &Wallets{db: db}
}

// AllActive returns the wallets that have not been deactivated.
func (r *Wallets) AllActive() ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.Where("is_active = ?", true).Order("wallet_name").Find(&wallets).Error
	if err != nil {
		return nil, wrap(err)
	}

	return wallets, nil
}

func (r *Wallets) Create(wallet *models.Wallet) error {
	return wrap(r.db.Create(wallet).Error)
}

func (r *Wallets) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Wallet{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
