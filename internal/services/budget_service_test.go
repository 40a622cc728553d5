package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"financeai/internal/core"
	"financeai/internal/storage"
)

func newTestBudgetService(t *testing.T) (*BudgetService, *ExpenseService) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewBudgetService(repo), NewExpenseService(repo, nil)
}

func TestSetBudgetValidation(t *testing.T) {
	budgets, _ := newTestBudgetService(t)
	ctx := context.Background()

	if err := budgets.SetBudget(ctx, core.Budget{Category: "", Budget: 100}); !errors.Is(err, core.ErrEmptyCategory) {
		t.Errorf("empty category error = %v, want %v", err, core.ErrEmptyCategory)
	}
	if err := budgets.SetBudget(ctx, core.Budget{Category: "Food", Budget: 0}); !errors.Is(err, core.ErrInvalidBudget) {
		t.Errorf("zero budget error = %v, want %v", err, core.ErrInvalidBudget)
	}
	if err := budgets.SetBudget(ctx, core.Budget{Category: "Food", Budget: -10}); !errors.Is(err, core.ErrInvalidBudget) {
		t.Errorf("negative budget error = %v, want %v", err, core.ErrInvalidBudget)
	}
	if err := budgets.SetBudget(ctx, core.Budget{Category: "Food", Budget: 1000}); err != nil {
		t.Errorf("valid budget error = %v", err)
	}
}

func TestAlertsNoBudgets(t *testing.T) {
	budgets, _ := newTestBudgetService(t)

	alerts, err := budgets.Alerts(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Alerts() error = %v", err)
	}
	if alerts == nil {
		t.Fatal("Alerts() = nil, want empty slice")
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts with no budgets, want 0", len(alerts))
	}
}

func TestAlertsCurrentMonth(t *testing.T) {
	budgets, expenses := newTestBudgetService(t)
	ctx := context.Background()

	for _, cat := range []string{"Food", "Transport", "Entertainment"} {
		if err := budgets.SetBudget(ctx, core.Budget{Category: cat, Budget: 1000}); err != nil {
			t.Fatalf("SetBudget(%s) error = %v", cat, err)
		}
	}

	seed := []struct {
		amount   float64
		category string
		day      string
	}{
		{700, "Food", "2025-08-05"},
		{500, "Food", "2025-08-18"},
		{850, "Transport", "2025-08-12"},
		{500, "Entertainment", "2025-08-15"},
		{900, "Food", "2025-07-20"}, // previous month, ignored
	}
	for _, e := range seed {
		if _, err := expenses.CreateExpense(ctx, core.Expense{
			Description: "seed",
			Amount:      e.amount,
			Category:    e.category,
			Date:        date(t, e.day),
		}); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	now := time.Date(2025, time.August, 21, 12, 0, 0, 0, time.UTC)
	alerts, err := budgets.Alerts(ctx, now)
	if err != nil {
		t.Fatalf("Alerts() error = %v", err)
	}

	// Food 1200/1000 exceeds, Transport 850/1000 is at 85%, Entertainment
	// 500/1000 stays quiet.
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2: %+v", len(alerts), alerts)
	}

	byCategory := make(map[string]core.Alert, len(alerts))
	for _, a := range alerts {
		byCategory[a.Category] = a
	}

	food, ok := byCategory["Food"]
	if !ok {
		t.Fatal("missing Food alert")
	}
	if food.Severity != core.SeverityDanger {
		t.Errorf("Food severity = %q, want danger", food.Severity)
	}
	if food.ExceededBy != 200 {
		t.Errorf("Food ExceededBy = %v, want 200", food.ExceededBy)
	}
	if food.Spent != 1200 {
		t.Errorf("Food Spent = %v, want 1200", food.Spent)
	}

	transport, ok := byCategory["Transport"]
	if !ok {
		t.Fatal("missing Transport alert")
	}
	if transport.Severity != core.SeverityWarning {
		t.Errorf("Transport severity = %q, want warning", transport.Severity)
	}
	if transport.ExceededBy != 0 {
		t.Errorf("Transport ExceededBy = %v, want 0", transport.ExceededBy)
	}

	if _, ok := byCategory["Entertainment"]; ok {
		t.Error("Entertainment under 80% should not alert")
	}
}

func TestListBudgetsUpsert(t *testing.T) {
	budgets, _ := newTestBudgetService(t)
	ctx := context.Background()

	if err := budgets.SetBudget(ctx, core.Budget{Category: "Food", Budget: 1000}); err != nil {
		t.Fatalf("SetBudget() error = %v", err)
	}
	if err := budgets.SetBudget(ctx, core.Budget{Category: "Food", Budget: 1500}); err != nil {
		t.Fatalf("SetBudget() error = %v", err)
	}

	got, err := budgets.ListBudgets(ctx)
	if err != nil {
		t.Fatalf("ListBudgets() error = %v", err)
	}
	if len(got) != 1 || got[0].Budget != 1500 {
		t.Errorf("ListBudgets() = %+v, want single Food budget of 1500", got)
	}
}
