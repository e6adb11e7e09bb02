package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
)

// RecurringInput describes a monthly series of identical entries.
type RecurringInput struct {
	StartDate     time.Time
	Amount        decimal.Decimal
	Type          models.Type
	WalletID      uuid.UUID
	ToWalletID    *uuid.UUID
	SubcategoryID int64
	Tag           string
	Description   string
	Months        int
}

// GenerateRecurring stores one entry per month, starting at the start
// date and stepping by calendar month. Each entry's description gets a
// month marker appended. Creation is iterative; it returns how many
// entries were stored and joins the failures.
func (s *Service) GenerateRecurring(input RecurringInput) (int, error) {
	if _, ok := s.session.ActiveUserID(); !ok {
		return 0, ErrNoActiveUser
	}
	if input.Months < 1 {
		return 0, nil
	}

	created := 0
	var errs []error
	for i := 0; i < input.Months; i++ {
		description := fmt.Sprintf("%s (miesiąc %d)", input.Description, i+1)
		err := s.AddTransaction(TransactionInput{
			Date:          input.StartDate.AddDate(0, i, 0),
			Amount:        input.Amount,
			Type:          input.Type,
			Status:        models.StatusPending,
			WalletID:      input.WalletID,
			ToWalletID:    input.ToWalletID,
			SubcategoryID: input.SubcategoryID,
			Tag:           input.Tag,
			Description:   description,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("month %d: %w", i+1, err))
			continue
		}
		created++
	}

	err := errors.Join(errs...)
	logErr(err, "generate recurring")
	return created, err
}
