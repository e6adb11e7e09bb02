package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homebudget/backend/internal/models"
)

// listPageSize is the single fixed page for the ledger listing.
const listPageSize = 10000

// transactionColumns are the row fields partial updates and field-scoped
// deletes may address. Anything else is rejected before touching the store.
var transactionColumns = map[string]bool{
	"transaction_date":       true,
	"amount":                 true,
	"type":                   true,
	"status":                 true,
	"wallet_fk":              true,
	"to_wallet_fk":           true,
	"subcategory_fk":         true,
	"created_by_fk":          true,
	"sentiment":              true,
	"tag":                    true,
	"description":            true,
	"is_excluded_from_stats": true,
	"attachment_path":        true,
	"attachment_type":        true,
}

// Transactions is the data access for the transaction ledger.
type Transactions struct {
	db *gorm.DB
}

func NewTransactions(db *gorm.DB) *Transactions {
	return &Transactions{db: db}
}

// All returns the ledger, newest first.
func (r *Transactions) All() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Order("transaction_date DESC").
		Limit(listPageSize).
		Find(&transactions).Error
	if err != nil {
		return nil, wrap(err)
	}

	return transactions, nil
}

func (r *Transactions) ByID(id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return models.Transaction{}, wrap(err)
	}

	return transaction, nil
}

func (r *Transactions) Create(transaction *models.Transaction) error {
	return wrap(r.db.Create(transaction).Error)
}

// Update overwrites exactly the given row fields.
func (r *Transactions) Update(id uuid.UUID, fields map[string]any) error {
	for column := range fields {
		if !transactionColumns[column] {
			return fmt.Errorf("%w: unknown column %q", ErrRemote, column)
		}
	}

	res := r.db.Model(&models.Transaction{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Transactions) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteWhere removes every transaction whose column equals value. Deleting
// nothing is not an error.
func (r *Transactions) DeleteWhere(column string, value any) error {
	if !transactionColumns[column] {
		return fmt.Errorf("%w: unknown column %q", ErrRemote, column)
	}

	return wrap(r.db.Delete(&models.Transaction{}, fmt.Sprintf("%s = ?", column), value).Error)
}

// CountWhere counts the transactions whose column equals value.
func (r *Transactions) CountWhere(column string, value any) (int64, error) {
	if !transactionColumns[column] {
		return 0, fmt.Errorf("%w: unknown column %q", ErrRemote, column)
	}

	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return 0, wrap(err)
	}

	return count, nil
}
