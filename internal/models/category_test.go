package models_test

import (
	"github.com/homebudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryNamesTrimmed() {
	category := models.Category{
		SubcategoryID: 101,
		CategoryID:    10,
		Group:         " Jedzenie ",
		Name:          "Restauracje  ",
		Type:          models.TypeExpense,
	}

	err := suite.db.Save(&category).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal("Jedzenie", category.Group)
	suite.Assert().Equal("Restauracje", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryDisplayName() {
	category := models.Category{Group: "Dom", Name: "Czynsz"}
	suite.Assert().Equal("Dom - Czynsz", category.DisplayName())
}

func (suite *TestSuiteStandard) TestCategorySoftDelete() {
	category := models.Category{
		SubcategoryID: 202,
		CategoryID:    20,
		Group:         "Transport",
		Name:          "Paliwo",
		Type:          models.TypeExpense,
	}
	suite.Assert().Nil(suite.db.Save(&category).Error)
	suite.Assert().Nil(suite.db.Delete(&category).Error)

	var categories []models.Category
	suite.Assert().Nil(suite.db.Find(&categories).Error)
	suite.Assert().Len(categories, 0)
}
