package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/homebudget/backend/internal/models"
)

var categoryColumns = map[string]bool{
	"category_id": true,
	"category":    true,
	"subcategory": true,
	"type":        true,
	"color_hex":   true,
}

// Categories is the data access for the classification rows.
type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

// All returns every category that is not soft-deleted.
func (r *Categories) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("category, subcategory").Find(&categories).Error
	if err != nil {
		return nil, wrap(err)
	}

	return categories, nil
}

func (r *Categories) Create(category *models.Category) error {
	return wrap(r.db.Create(category).Error)
}

func (r *Categories) Update(subcategoryID int64, fields map[string]any) error {
	for column := range fields {
		if !categoryColumns[column] {
			return fmt.Errorf("%w: unknown column %q", ErrRemote, column)
		}
	}

	res := r.db.Model(&models.Category{}).
		Where("subcategory_id = ?", subcategoryID).
		Updates(fields)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete marks the category deleted. It stays in the store but vanishes
// from All.
func (r *Categories) Delete(subcategoryID int64) error {
	res := r.db.Delete(&models.Category{}, "subcategory_id = ?", subcategoryID)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
