package service_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/service"
)

func (suite *TestSuiteStandard) addTransfer() {
	destination := uuid.New()
	suite.Require().Nil(suite.service.AddTransaction(service.TransactionInput{
		Amount:     decimal.NewFromFloat(100),
		Type:       models.TypeTransfer,
		WalletID:   suite.walletID,
		ToWalletID: &destination,
	}))
}

func (suite *TestSuiteStandard) transferCategories() []models.Category {
	suite.Require().Nil(suite.service.ReloadCache())

	var found []models.Category
	for _, category := range suite.service.Categories() {
		if category.Group == "System" && category.Name == "Transfer" {
			found = append(found, category)
		}
	}
	return found
}

func (suite *TestSuiteStandard) TestTransferProvisionsSystemCategory() {
	suite.addTransfer()

	categories := suite.transferCategories()
	suite.Require().Len(categories, 1)
	suite.Assert().Equal(models.TypeTransfer, categories[0].Type)
	suite.Assert().Equal(int64(-1), categories[0].CategoryID)
	suite.Require().NotNil(categories[0].ColorHex)
	suite.Assert().Equal("#60a5fa", *categories[0].ColorHex)
}

func (suite *TestSuiteStandard) TestTransferProvisioningIdempotent() {
	suite.addTransfer()
	suite.addTransfer()
	suite.addTransfer()

	suite.Assert().Len(suite.transferCategories(), 1)
}

func (suite *TestSuiteStandard) TestAddCategoryRejectsDuplicate() {
	err := suite.service.AddCategory("Jedzenie", "Restauracje", models.TypeExpense, "")
	suite.Assert().ErrorIs(err, service.ErrCategoryExists)
}

func (suite *TestSuiteStandard) TestAddCategoryReusesGroupID() {
	suite.Require().Nil(suite.service.AddCategory("Jedzenie", "Zakupy", models.TypeExpense, ""))

	var groupIDs []int64
	for _, category := range suite.service.Categories() {
		if category.Group == "Jedzenie" {
			groupIDs = append(groupIDs, category.CategoryID)
		}
	}
	suite.Require().Len(groupIDs, 2)
	suite.Assert().Equal(groupIDs[0], groupIDs[1])
}

func (suite *TestSuiteStandard) TestCategoryGroupsByType() {
	suite.Require().Nil(suite.service.AddCategory("Praca", "Pensja", models.TypeIncome, ""))

	suite.Assert().Equal([]string{"Jedzenie"}, suite.service.CategoryGroupsByType(models.TypeExpense))
	suite.Assert().Equal([]string{"Praca"}, suite.service.CategoryGroupsByType(models.TypeIncome))
	suite.Assert().Equal([]string{"Jedzenie", "Praca"}, suite.service.UniqueCategoryGroups())
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	id := suite.subcategoryID()

	err := suite.service.UpdateCategory(id, "Jedzenie", "Knajpy", models.TypeExpense, "#112233")
	suite.Assert().Nil(err)

	categories := suite.service.Categories()
	suite.Require().Len(categories, 1)
	category := categories[0]
	suite.Assert().Equal("Knajpy", category.Name)
	suite.Require().NotNil(category.ColorHex)
	suite.Assert().Equal("#112233", *category.ColorHex)
}

func (suite *TestSuiteStandard) TestDeleteCategoryRestrict() {
	suite.addExpense(10, service.TransactionInput{})

	err := suite.service.DeleteCategory(suite.subcategoryID(), false)
	suite.Assert().ErrorIs(err, service.ErrCategoryInUse)

	// Category and transaction both survive.
	suite.Assert().Len(suite.service.Categories(), 1)
	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 1)
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascade() {
	id := suite.subcategoryID()
	suite.addExpense(10, service.TransactionInput{})
	suite.addExpense(20, service.TransactionInput{})

	err := suite.service.DeleteCategory(id, true)
	suite.Assert().Nil(err)

	suite.Assert().Len(suite.service.Categories(), 0)
	rows, err := suite.service.Rows()
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 0)
}
