package service_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/service"
)

func (suite *TestSuiteStandard) TestRowsOrdering() {
	suite.addExpense(1, service.TransactionInput{
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "starsza",
	})
	suite.addExpense(2, service.TransactionInput{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "nowsza",
	})
	suite.addExpense(3, service.TransactionInput{
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.StatusPending,
		Description: "planowana",
	})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)

	// Pending first, then newest first.
	suite.Assert().Equal("planowana", rows[0].Description)
	suite.Assert().Equal("nowsza", rows[1].Description)
	suite.Assert().Equal("starsza", rows[2].Description)
}

func (suite *TestSuiteStandard) TestRowsUnknownWallet() {
	suite.addExpense(5, service.TransactionInput{WalletID: uuid.New()})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)
	suite.Assert().Equal("Nieznany", rows[0].FromWallet)
}

func (suite *TestSuiteStandard) TestRowsEmptyOptionalFields() {
	suite.addExpense(5, service.TransactionInput{SubcategoryID: -99})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)

	row := rows[0]
	suite.Assert().Equal("-", row.Category)
	suite.Assert().Equal("-", row.Subcategory)
	suite.Assert().Equal("-", row.ToWallet)
	suite.Assert().Equal("-", row.Sentiment)
	suite.Assert().Equal("", row.Tag)
	suite.Assert().Equal("#1b1c1d", row.RowColor)
}

func (suite *TestSuiteStandard) TestRowsExcludedFromStats() {
	suite.addExpense(5, service.TransactionInput{ExcludedFromStats: true})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)
	suite.Assert().Equal("Nie", rows[0].InStats)
}

func (suite *TestSuiteStandard) TestRowsUnknownAuthor() {
	author := suite.userID
	suite.addExpense(5, service.TransactionInput{})

	// Forget the author, keep the ledger entry.
	suite.Require().Nil(suite.db.Delete(&models.User{}, "id = ?", author).Error)

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)

	id := author.String()
	suite.Assert().Equal("..."+id[len(id)-4:], rows[0].Author)
	suite.Assert().Equal("#ffffff", rows[0].AuthorColor)
}

func (suite *TestSuiteStandard) TestRowsCategoryColorDerived() {
	// The seeded category has no explicit color, so the row color is
	// derived from the group name and therefore stable.
	suite.addExpense(5, service.TransactionInput{})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)
	suite.Assert().Equal(service.CategoryColor("Jedzenie"), rows[0].RowColor)
}

func (suite *TestSuiteStandard) TestFilterRowsPending() {
	suite.addExpense(1, service.TransactionInput{Status: models.StatusPending})
	suite.addExpense(2, service.TransactionInput{})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)

	filtered := service.FilterRows(rows, service.Filter{})
	suite.Require().Len(filtered, 1)
	suite.Assert().Equal(models.StatusCompleted, filtered[0].Status)

	suite.Assert().Len(service.FilterRows(rows, service.Filter{IncludePending: true}), 2)
}

func (suite *TestSuiteStandard) TestFilterRowsPattern() {
	suite.addExpense(1, service.TransactionInput{Tag: "wakacje"})
	suite.addExpense(2, service.TransactionInput{Description: "Bilet na pociąg"})
	suite.addExpense(3, service.TransactionInput{})

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)

	suite.Assert().Len(service.FilterRows(rows, service.Filter{Pattern: "wak*"}), 1)
	suite.Assert().Len(service.FilterRows(rows, service.Filter{Pattern: "*pociąg*"}), 1)
	// Every row matches on the category.
	suite.Assert().Len(service.FilterRows(rows, service.Filter{Pattern: "jedzenie*"}), 3)
	suite.Assert().Len(service.FilterRows(rows, service.Filter{Pattern: "brak*"}), 0)
}

func (suite *TestSuiteStandard) TestRowsAmountFixed() {
	suite.Require().Nil(suite.service.AddTransaction(service.TransactionInput{
		Amount:        decimal.NewFromFloat(7),
		Type:          models.TypeExpense,
		WalletID:      suite.walletID,
		SubcategoryID: suite.subcategoryID(),
	}))

	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)
	suite.Assert().Equal("7.00", rows[0].Amount)
}
