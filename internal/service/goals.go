package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homebudget/backend/internal/models"
	"github.com/homebudget/backend/internal/types"
)

// Goals returns the budget goals, largest target first.
func (s *Service) Goals() ([]models.BudgetGoal, error) {
	return s.goals.All()
}

// SetGoal creates or replaces the goal for a tag. Saving an existing tag
// overwrites its target instead of duplicating the row.
func (s *Service) SetGoal(tag string, monthlyTarget decimal.Decimal) error {
	if strings.TrimSpace(tag) == "" {
		return ErrTagEmpty
	}
	if !monthlyTarget.IsPositive() {
		return models.ErrGoalTargetNotPositive
	}

	if err := s.goals.UpsertByTag(tag, monthlyTarget); err != nil {
		logErr(err, "set goal")
		return err
	}

	return nil
}

// DeleteGoal removes one goal.
func (s *Service) DeleteGoal(id int64) error {
	if err := s.goals.Delete(id); err != nil {
		logErr(err, "delete goal")
		return err
	}

	return nil
}

// GoalProgress is one goal next to the month's actual spending on its tag.
type GoalProgress struct {
	Goal  models.BudgetGoal
	Spent decimal.Decimal
}

// GoalProgressFor sums, per active goal, the completed in-stats expenses
// carrying the goal's tag within the month. Pending and excluded entries
// never count toward a goal.
func (s *Service) GoalProgressFor(month types.Month) ([]GoalProgress, error) {
	goals, err := s.goals.All()
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.All()
	if err != nil {
		return nil, err
	}

	spentByTag := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != models.TypeExpense ||
			transaction.Status != models.StatusCompleted ||
			transaction.ExcludedFromStats ||
			transaction.Tag == nil ||
			!month.Contains(transaction.Date) {
			continue
		}
		spentByTag[*transaction.Tag] = spentByTag[*transaction.Tag].Add(transaction.Amount)
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		if !goal.IsActive {
			continue
		}
		progress = append(progress, GoalProgress{Goal: goal, Spent: spentByTag[goal.Tag]})
	}

	return progress, nil
}
