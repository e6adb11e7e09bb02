package service_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/service"
)

func (suite *TestSuiteStandard) TestDeleteWalletRestrict() {
	suite.addExpense(10, service.TransactionInput{})

	err := suite.service.DeleteWallet(suite.walletID, false)
	suite.Assert().ErrorIs(err, service.ErrWalletInUse)

	wallets, err := suite.service.Wallets()
	suite.Require().Nil(err)
	suite.Assert().Len(wallets, 1)
}

func (suite *TestSuiteStandard) TestDeleteWalletRestrictChecksDestination() {
	suite.Require().Nil(suite.service.AddWallet("Oszczędności", suite.userID))
	wallets, err := suite.service.Wallets()
	suite.Require().Nil(err)
	suite.Require().Len(wallets, 2)

	var other uuid.UUID
	for _, wallet := range wallets {
		if wallet.ID != suite.walletID {
			other = wallet.ID
		}
	}

	suite.Require().Nil(suite.service.AddTransaction(service.TransactionInput{
		Amount:     decimal.NewFromFloat(100),
		Type:       models.TypeTransfer,
		WalletID:   suite.walletID,
		ToWalletID: &other,
	}))

	// The destination wallet is just as referenced as the source.
	err = suite.service.DeleteWallet(other, false)
	suite.Assert().ErrorIs(err, service.ErrWalletInUse)
}

func (suite *TestSuiteStandard) TestDeleteWalletCascade() {
	suite.addExpense(10, service.TransactionInput{})
	suite.addExpense(20, service.TransactionInput{})

	err := suite.service.DeleteWallet(suite.walletID, true)
	suite.Assert().Nil(err)

	wallets, err := suite.service.Wallets()
	suite.Require().Nil(err)
	suite.Assert().Len(wallets, 0)

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 0)
}

func (suite *TestSuiteStandard) TestWalletBalance() {
	suite.Require().Nil(suite.service.AddCategory("Praca", "Pensja", models.TypeIncome, ""))
	incomeID := suite.service.SubcategoriesByGroup("Praca")[0].ID

	suite.Require().Nil(suite.service.AddTransaction(service.TransactionInput{
		Amount:        decimal.NewFromFloat(1000),
		Type:          models.TypeIncome,
		WalletID:      suite.walletID,
		SubcategoryID: incomeID,
	}))
	suite.addExpense(150, service.TransactionInput{})

	// Pending entries never count.
	suite.addExpense(999, service.TransactionInput{Status: models.StatusPending})

	balance, err := suite.service.WalletBalance(suite.walletID)
	suite.Assert().Nil(err)
	suite.Assert().True(balance.Equal(decimal.NewFromFloat(850)), "balance is %s", balance)
}

func (suite *TestSuiteStandard) TestWalletBalanceTransfer() {
	suite.Require().Nil(suite.service.AddWallet("Oszczędności", suite.userID))
	wallets, err := suite.service.Wallets()
	suite.Require().Nil(err)

	var other uuid.UUID
	for _, wallet := range wallets {
		if wallet.ID != suite.walletID {
			other = wallet.ID
		}
	}

	suite.Require().Nil(suite.service.AddTransaction(service.TransactionInput{
		Amount:     decimal.NewFromFloat(200),
		Type:       models.TypeTransfer,
		WalletID:   suite.walletID,
		ToWalletID: &other,
	}))

	source, err := suite.service.WalletBalance(suite.walletID)
	suite.Assert().Nil(err)
	suite.Assert().True(source.Equal(decimal.NewFromFloat(-200)))

	destination, err := suite.service.WalletBalance(other)
	suite.Assert().Nil(err)
	suite.Assert().True(destination.Equal(decimal.NewFromFloat(200)))
}
