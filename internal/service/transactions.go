package service

import (
	"errors"
	"fmt"
	"golang.org/x/exp/maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
)

// TransactionInput carries the entry form values for a new transaction.
// Optional fields left empty are stored as absent, never as empty strings.
type TransactionInput struct {
	Date              time.Time
	Amount            decimal.Decimal
	Type              models.Type
	Status            models.Status
	WalletID          uuid.UUID
	ToWalletID        *uuid.UUID
	SubcategoryID     int64
	Sentiment         string
	Tag               string
	Description       string
	ExcludedFromStats bool
	AttachmentPath    string
	AttachmentType    string
}

// AddTransaction validates and stores one new ledger entry. Validation
// failures are rejected before any store call is attempted.
func (s *Service) AddTransaction(input TransactionInput) error {
	userID, ok := s.session.ActiveUserID()
	if !ok {
		return ErrNoActiveUser
	}

	if !input.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if input.Type != models.TypeTransfer {
		// A destination wallet is only meaningful for transfers.
		input.ToWalletID = nil
	} else if input.ToWalletID == nil {
		return models.ErrTransferWithoutDestination
	}

	subcategoryID := input.SubcategoryID
	if input.Type == models.TypeTransfer && subcategoryID == 0 {
		category, err := s.ensureTransferCategory()
		if err != nil {
			logErr(err, "add transaction")
			return err
		}
		subcategoryID = category.SubcategoryID
	}

	transaction := models.Transaction{
		Date:              input.Date,
		Amount:            input.Amount,
		Type:              input.Type,
		Status:            input.Status,
		WalletID:          input.WalletID,
		ToWalletID:        input.ToWalletID,
		SubcategoryID:     subcategoryID,
		CreatedByID:       userID,
		Sentiment:         optionalSentiment(input.Sentiment),
		Tag:               optional(input.Tag),
		Description:       optional(input.Description),
		ExcludedFromStats: input.ExcludedFromStats,
		AttachmentPath:    optional(input.AttachmentPath),
		AttachmentType:    optional(input.AttachmentType),
	}

	if err := transaction.Validate(); err != nil {
		return err
	}

	if err := s.transactions.Create(&transaction); err != nil {
		logErr(err, "add transaction")
		return err
	}

	return nil
}

// UpdateTransactionField overwrites a single row field.
func (s *Service) UpdateTransactionField(id uuid.UUID, field string, value any) error {
	return s.UpdateTransactionFields(id, map[string]any{field: value})
}

// UpdateTransactionFields overwrites the given row fields.
//
// The virtual field "transaction_type" is rewritten into the type column
// plus the subcategory of the first cached category matching the new
// type. When no such category exists the whole write is rejected and the
// record stays completely unchanged — never a partial write of the type
// alone.
func (s *Service) UpdateTransactionFields(id uuid.UUID, fields map[string]any) error {
	if raw, ok := fields["transaction_type"]; ok {
		newType := models.Type(fmt.Sprint(raw))
		category, ok := s.cache.Load().FirstCategoryByType(newType)
		if !ok {
			return ErrNoCategoryForType
		}

		fields = maps.Clone(fields)
		delete(fields, "transaction_type")
		fields["type"] = string(newType)
		fields["subcategory_fk"] = category.SubcategoryID
	}

	if err := s.transactions.Update(id, fields); err != nil {
		logErr(err, "update transaction")
		return err
	}

	return nil
}

// DeleteTransactions deletes iteratively, not atomically. It returns how
// many entries went away; a non-nil error means the rest failed and names
// every one of them.
func (s *Service) DeleteTransactions(ids []uuid.UUID) (int, error) {
	deleted := 0
	var errs []error
	for _, id := range ids {
		if err := s.transactions.Delete(id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		deleted++
	}

	err := errors.Join(errs...)
	logErr(err, "delete transactions")
	return deleted, err
}

// TransactionByID returns one stored entry.
func (s *Service) TransactionByID(id uuid.UUID) (models.Transaction, error) {
	return s.transactions.ByID(id)
}

// UniqueTags returns every tag in use, sorted.
func (s *Service) UniqueTags() ([]string, error) {
	transactions, err := s.transactions.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, transaction := range transactions {
		if transaction.Tag != nil && *transaction.Tag != "" {
			seen[*transaction.Tag] = struct{}{}
		}
	}

	tags := maps.Keys(seen)
	slices.Sort(tags)
	return tags, nil
}

// UniqueAuthors returns every creator id present in the ledger.
func (s *Service) UniqueAuthors() ([]uuid.UUID, error) {
	transactions, err := s.transactions.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	for _, transaction := range transactions {
		if transaction.CreatedByID != uuid.Nil {
			seen[transaction.CreatedByID] = struct{}{}
		}
	}

	return maps.Keys(seen), nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalSentiment(value string) *models.Sentiment {
	if value == "" {
		return nil
	}
	sentiment := models.Sentiment(value)
	return &sentiment
}
