package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/homebudget/backend/internal/models"
)

// Goals is the data access for monthly budget goals.
type Goals struct {
	db *gorm.DB
}

func NewGoals(db *gorm.DB) *Goals {
	return &Goals{db: db}
}

// All returns the goals, highest target first.
func (r *Goals) All() ([]models.BudgetGoal, error) {
	var goals []models.BudgetGoal
	err := r.db.Order("monthly_target_amount DESC").Find(&goals).Error
	if err != nil {
		return nil, wrap(err)
	}

	return goals, nil
}

// UpsertByTag creates the goal for the tag or overwrites its target. The
// conflict key is the tag, not the surrogate id, so repeated calls with
// the same tag never duplicate.
func (r *Goals) UpsertByTag(tag string, amount decimal.Decimal) error {
	goal := models.BudgetGoal{
		Tag:                 tag,
		MonthlyTargetAmount: amount,
		IsActive:            true,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_target_amount", "is_active", "updated_at"}),
	}).Create(&goal).Error

	return wrap(err)
}

func (r *Goals) Delete(id int64) error {
	res := r.db.Delete(&models.BudgetGoal{}, "id = ?", id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
