package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
)

// Wallets returns the active wallets for pickers.
func (s *Service) Wallets() ([]models.Wallet, error) {
	return s.wallets.AllActive()
}

// AddWallet creates an active wallet for the owner.
func (s *Service) AddWallet(name string, ownerID uuid.UUID) error {
	wallet := models.Wallet{Name: name, OwnerID: ownerID, IsActive: true}
	if err := s.wallets.Create(&wallet); err != nil {
		logErr(err, "add wallet")
		return err
	}

	return s.ReloadCache()
}

// DeleteWallet removes a wallet. Restrict mode fails while any
// transaction references it as source or destination; cascade mode
// deletes those transactions first.
func (s *Service) DeleteWallet(id uuid.UUID, cascade bool) error {
	if cascade {
		if err := s.transactions.DeleteWhere("wallet_fk", id); err != nil {
			logErr(err, "delete wallet")
			return err
		}
		if err := s.transactions.DeleteWhere("to_wallet_fk", id); err != nil {
			logErr(err, "delete wallet")
			return err
		}
	} else {
		sources, err := s.transactions.CountWhere("wallet_fk", id)
		if err != nil {
			return err
		}
		destinations, err := s.transactions.CountWhere("to_wallet_fk", id)
		if err != nil {
			return err
		}
		if sources+destinations > 0 {
			return ErrWalletInUse
		}
	}

	if err := s.wallets.Delete(id); err != nil {
		logErr(err, "delete wallet")
		return err
	}

	return s.ReloadCache()
}

// WalletBalance sums the completed ledger for one wallet. Pending
// transactions are excluded; the in-stats flag does not matter here, it
// only scopes statistics.
func (s *Service) WalletBalance(id uuid.UUID) (decimal.Decimal, error) {
	transactions, err := s.transactions.All()
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Status == models.StatusPending {
			continue
		}

		switch transaction.Type {
		case models.TypeIncome:
			if transaction.WalletID == id {
				balance = balance.Add(transaction.Amount)
			}
		case models.TypeExpense:
			if transaction.WalletID == id {
				balance = balance.Sub(transaction.Amount)
			}
		case models.TypeTransfer:
			if transaction.WalletID == id {
				balance = balance.Sub(transaction.Amount)
			}
			if transaction.ToWalletID != nil && *transaction.ToWalletID == id {
				balance = balance.Add(transaction.Amount)
			}
		}
	}

	return balance, nil
}
