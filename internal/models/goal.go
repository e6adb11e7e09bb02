package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetGoal is a monthly spending ceiling keyed by free-text tag.
//
// The unique index on the tag makes upsert-by-tag overwrite instead of
// duplicate.
type BudgetGoal struct {
	ID                  int64           `gorm:"primaryKey"`
	Tag                 string          `gorm:"uniqueIndex"`
	MonthlyTargetAmount decimal.Decimal `gorm:"column:monthly_target_amount;type:DECIMAL(20,8)"`
	IsActive            bool            `gorm:"column:is_active"`
	Timestamps
}

var ErrGoalTargetNotPositive = errors.New("goal targets must be larger than zero")

// BeforeSave trims whitespace from the tag.
func (g *BudgetGoal) BeforeSave(_ *gorm.DB) error {
	g.Tag = strings.TrimSpace(g.Tag)
	return nil
}

// AfterSave rejects non-positive targets.
func (g *BudgetGoal) AfterSave(_ *gorm.DB) error {
	if !g.MonthlyTargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	return nil
}
