package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Type classifies the direction of a monetary movement.
type Type string

const (
	TypeIncome   Type = "INCOME"
	TypeExpense  Type = "EXPENSE"
	TypeTransfer Type = "TRANSFER"
)

// Status reports whether a transaction has settled.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
)

// Sentiment is the closed set of mood labels a transaction can carry.
type Sentiment string

const (
	SentimentFundament Sentiment = "Fundament"
	SentimentRozwoj    Sentiment = "Rozwój"
	SentimentNagroda   Sentiment = "Nagroda"
	SentimentNiedosyt  Sentiment = "Niedosyt"
	SentimentMega      Sentiment = "Mega"
	SentimentRutyna    Sentiment = "Rutyna"
	SentimentTragedia  Sentiment = "Tragedia"
)

// Valid reports whether the sentiment is part of the closed enumeration.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentFundament, SentimentRozwoj, SentimentNagroda,
		SentimentNiedosyt, SentimentMega, SentimentRutyna, SentimentTragedia:
		return true
	}
	return false
}

var (
	ErrAmountNegative             = errors.New("transaction amounts must not be negative")
	ErrTransferWithoutDestination = errors.New("transfers need a destination wallet")
	ErrUnknownSentiment           = errors.New("unknown sentiment")
)

// Transaction represents a monetary movement from a wallet.
//
// The column names mirror the remote table rows the application historically
// used, so partial updates address fields like "subcategory_fk" directly.
type Transaction struct {
	DefaultModel
	Date              time.Time       `gorm:"column:transaction_date;type:date"`
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type              Type            `gorm:"column:type"`
	Status            Status          `gorm:"column:status"`
	WalletID          uuid.UUID       `gorm:"column:wallet_fk"`
	ToWalletID        *uuid.UUID      `gorm:"column:to_wallet_fk"`
	SubcategoryID     int64           `gorm:"column:subcategory_fk"`
	CreatedByID       uuid.UUID       `gorm:"column:created_by_fk"`
	Sentiment         *Sentiment      `gorm:"column:sentiment"`
	Tag               *string         `gorm:"column:tag"`
	Description       *string         `gorm:"column:description"`
	ExcludedFromStats bool            `gorm:"column:is_excluded_from_stats"`
	AttachmentPath    *string         `gorm:"column:attachment_path"`
	AttachmentType    *string         `gorm:"column:attachment_type"`
}

// Validate checks the record invariants without touching the store.
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Type == TypeTransfer && t.ToWalletID == nil {
		return ErrTransferWithoutDestination
	}

	if t.Sentiment != nil && !t.Sentiment.Valid() {
		return ErrUnknownSentiment
	}

	return nil
}

// BeforeSave normalizes the record and enforces its invariants.
//
// A destination wallet is only meaningful for transfers, so it is cleared
// for every other type before the invariant check runs.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Type != TypeTransfer {
		t.ToWalletID = nil
	}

	if t.Status == "" {
		t.Status = StatusCompleted
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return t.Validate()
}

// AfterFind updates the date to use UTC as timezone.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
