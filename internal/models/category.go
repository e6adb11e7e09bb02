package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is one subcategory row of the two-level classification.
//
// SubcategoryID is the primary key transactions reference. CategoryID is
// shared by all subcategories of the same group. Uniqueness of the
// (group, name, type) triple is enforced by the service, not the store.
type Category struct {
	SubcategoryID int64   `gorm:"column:subcategory_id;primaryKey"`
	CategoryID    int64   `gorm:"column:category_id"`
	Group         string  `gorm:"column:category"`
	Name          string  `gorm:"column:subcategory"`
	Type          Type    `gorm:"column:type"`
	ColorHex      *string `gorm:"column:color_hex"`
	Timestamps
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// DisplayName is the human form used in pickers and view rows.
func (c Category) DisplayName() string {
	return c.Group + " - " + c.Name
}

// BeforeSave trims whitespace from the names.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Group = strings.TrimSpace(c.Group)
	c.Name = strings.TrimSpace(c.Name)

	return nil
}
