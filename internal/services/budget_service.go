package services

import (
	"context"
	"fmt"
	"time"

	"financeai/internal/core"
	"financeai/internal/storage"
)

// BudgetService manages per-category budgets and the alerts derived from
// them.
type BudgetService struct {
	storage *storage.SQLiteRepository
}

func NewBudgetService(storage *storage.SQLiteRepository) *BudgetService {
	return &BudgetService{storage: storage}
}

// SetBudget validates and upserts a category budget.
func (s *BudgetService) SetBudget(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return s.storage.UpsertBudget(ctx, b)
}

// ListBudgets returns all budgets in category order.
func (s *BudgetService) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	return s.storage.ListBudgets(ctx)
}

// Alerts compares each budget against spending in the month containing now.
// With no budgets configured it returns an empty list without touching the
// expenses table.
func (s *BudgetService) Alerts(ctx context.Context, now time.Time) ([]core.Alert, error) {
	budgets, err := s.storage.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return []core.Alert{}, nil
	}

	start, end := core.MonthRange(now)
	spent, err := s.storage.SumByCategory(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum spending: %w", err)
	}

	return core.ComputeAlerts(budgets, spent), nil
}
