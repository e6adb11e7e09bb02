package service_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/service"
)

func (suite *TestSuiteStandard) TestGenerateRecurring() {
	start := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)

	created, err := suite.service.GenerateRecurring(service.RecurringInput{
		StartDate:     start,
		Amount:        decimal.NewFromFloat(49.99),
		Type:          models.TypeExpense,
		WalletID:      suite.walletID,
		SubcategoryID: suite.subcategoryID(),
		Description:   "Abonament",
		Months:        3,
	})
	suite.Assert().Nil(err)
	suite.Assert().Equal(3, created)

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)

	// All pending, stepped by calendar month, with the month marker.
	descriptions := make(map[string]string, 3)
	for _, row := range rows {
		suite.Assert().Equal(models.StatusPending, row.Status)
		descriptions[row.Date] = row.Description
	}
	suite.Assert().Equal("Abonament (miesiąc 1)", descriptions["2024-11-15"])
	suite.Assert().Equal("Abonament (miesiąc 2)", descriptions["2024-12-15"])
	suite.Assert().Equal("Abonament (miesiąc 3)", descriptions["2025-01-15"])
}

func (suite *TestSuiteStandard) TestGenerateRecurringRequiresActiveUser() {
	suite.service.Session().SetActiveUserID(uuid.Nil)

	created, err := suite.service.GenerateRecurring(service.RecurringInput{
		StartDate: time.Now(),
		Amount:    decimal.NewFromFloat(10),
		Type:      models.TypeExpense,
		WalletID:  suite.walletID,
		Months:    2,
	})
	suite.Assert().ErrorIs(err, service.ErrNoActiveUser)
	suite.Assert().Equal(0, created)
}

func (suite *TestSuiteStandard) TestGenerateRecurringZeroMonths() {
	created, err := suite.service.GenerateRecurring(service.RecurringInput{
		StartDate: time.Now(),
		Amount:    decimal.NewFromFloat(10),
		Type:      models.TypeExpense,
		WalletID:  suite.walletID,
	})
	suite.Assert().Nil(err)
	suite.Assert().Equal(0, created)
}

func (suite *TestSuiteStandard) TestGenerateRecurringPartialFailure() {
	created, err := suite.service.GenerateRecurring(service.RecurringInput{
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(-10),
		Type:          models.TypeExpense,
		WalletID:      suite.walletID,
		SubcategoryID: suite.subcategoryID(),
		Months:        2,
	})
	suite.Assert().NotNil(err)
	suite.Assert().Equal(0, created)
}
