package storage

import (
	"context"
	"path/filepath"
	"testing"

	"financeai/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func mustCreate(t *testing.T, repo *SQLiteRepository, desc string, amount float64, category, date string) core.Expense {
	t.Helper()
	e, err := repo.CreateExpense(context.Background(), core.Expense{
		Description: desc,
		Amount:      amount,
		Category:    category,
		Date:        mustDate(t, date),
	})
	if err != nil {
		t.Fatalf("CreateExpense(%q) error = %v", desc, err)
	}
	return e
}

func TestCreateExpense(t *testing.T) {
	repo := newTestRepo(t)

	e := mustCreate(t, repo, "uber ride", 250.50, "Transport", "2025-08-10")

	if e.ID <= 0 {
		t.Errorf("ID = %d, want positive", e.ID)
	}
	if e.CreatedAt == "" {
		t.Error("CreatedAt not assigned")
	}
	if e.Description != "uber ride" || e.Amount != 250.50 || e.Category != "Transport" {
		t.Errorf("unexpected expense %+v", e)
	}

	second := mustCreate(t, repo, "pizza delivery", 400, "Food", "2025-08-10")
	if second.ID <= e.ID {
		t.Errorf("second ID = %d, want > %d", second.ID, e.ID)
	}
}

func TestListExpensesOrdering(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "middle", 10, "Food", "2025-08-10")
	mustCreate(t, repo, "oldest", 20, "Food", "2025-08-01")
	first := mustCreate(t, repo, "newest", 30, "Food", "2025-08-15")
	second := mustCreate(t, repo, "newest same day", 40, "Food", "2025-08-15")

	expenses, err := repo.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}

	wantOrder := []string{"newest same day", "newest", "middle", "oldest"}
	if len(expenses) != len(wantOrder) {
		t.Fatalf("got %d expenses, want %d", len(expenses), len(wantOrder))
	}
	for i, want := range wantOrder {
		if expenses[i].Description != want {
			t.Errorf("expenses[%d] = %q, want %q", i, expenses[i].Description, want)
		}
	}

	// Same date: the later insert (higher ID) comes first.
	if expenses[0].ID != second.ID || expenses[1].ID != first.ID {
		t.Errorf("same-day tie not broken by ID: got %d then %d", expenses[0].ID, expenses[1].ID)
	}
}

func TestListExpensesEmpty(t *testing.T) {
	repo := newTestRepo(t)

	expenses, err := repo.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	if expenses == nil {
		t.Fatal("ListExpenses() = nil, want empty slice")
	}
	if len(expenses) != 0 {
		t.Errorf("got %d expenses, want 0", len(expenses))
	}
}

func TestSumByCategory(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "groceries", 100, "Food", "2025-08-01")
	mustCreate(t, repo, "dinner", 50, "Food", "2025-08-20")
	mustCreate(t, repo, "cab", 75, "Transport", "2025-08-15")
	mustCreate(t, repo, "last month", 999, "Food", "2025-07-31")
	mustCreate(t, repo, "next month", 999, "Food", "2025-09-01")

	totals, err := repo.SumByCategory(context.Background(), "2025-08-01", "2025-09-01")
	if err != nil {
		t.Fatalf("SumByCategory() error = %v", err)
	}

	if got := totals["Food"]; got != 150 {
		t.Errorf("Food total = %v, want 150", got)
	}
	if got := totals["Transport"]; got != 75 {
		t.Errorf("Transport total = %v, want 75", got)
	}
	if len(totals) != 2 {
		t.Errorf("got %d categories, want 2: %v", len(totals), totals)
	}
}

func TestSummarize(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "groceries", 300, "Food", "2025-08-01")
	mustCreate(t, repo, "dinner", 200, "Food", "2025-08-10")
	mustCreate(t, repo, "cab", 100, "Transport", "2025-08-15")
	mustCreate(t, repo, "outside", 500, "Bills", "2025-07-15")

	summary, err := repo.Summarize(context.Background(), "2025-08-01", "2025-09-01")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.TotalSpent != 600 {
		t.Errorf("TotalSpent = %v, want 600", summary.TotalSpent)
	}
	if summary.ExpenseCount != 3 {
		t.Errorf("ExpenseCount = %d, want 3", summary.ExpenseCount)
	}
	if len(summary.ByCategory) != 2 {
		t.Fatalf("got %d categories, want 2", len(summary.ByCategory))
	}
	if summary.ByCategory[0].Category != "Food" || summary.ByCategory[0].Total != 500 {
		t.Errorf("top category = %+v, want Food 500", summary.ByCategory[0])
	}
	if summary.TopCategory() != "Food" {
		t.Errorf("TopCategory() = %q, want Food", summary.TopCategory())
	}
}

func TestSummarizeEmptyRange(t *testing.T) {
	repo := newTestRepo(t)

	summary, err := repo.Summarize(context.Background(), "2025-08-01", "2025-09-01")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.TotalSpent != 0 || summary.ExpenseCount != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
	if summary.TopCategory() != "" {
		t.Errorf("TopCategory() = %q, want empty", summary.TopCategory())
	}
}

func TestUpsertBudget(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertBudget(ctx, core.Budget{Category: "Food", Budget: 1000}); err != nil {
		t.Fatalf("UpsertBudget() error = %v", err)
	}
	if err := repo.UpsertBudget(ctx, core.Budget{Category: "Transport", Budget: 500}); err != nil {
		t.Fatalf("UpsertBudget() error = %v", err)
	}
	// Same category replaces the amount.
	if err := repo.UpsertBudget(ctx, core.Budget{Category: "Food", Budget: 1500}); err != nil {
		t.Fatalf("UpsertBudget() error = %v", err)
	}

	budgets, err := repo.ListBudgets(ctx)
	if err != nil {
		t.Fatalf("ListBudgets() error = %v", err)
	}

	if len(budgets) != 2 {
		t.Fatalf("got %d budgets, want 2", len(budgets))
	}
	if budgets[0].Category != "Food" || budgets[0].Budget != 1500 {
		t.Errorf("budgets[0] = %+v, want Food 1500", budgets[0])
	}
	if budgets[1].Category != "Transport" || budgets[1].Budget != 500 {
		t.Errorf("budgets[1] = %+v, want Transport 500", budgets[1])
	}
	if budgets[0].UpdatedAt == "" {
		t.Error("UpdatedAt not assigned")
	}
}

func TestListBudgetsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	budgets, err := repo.ListBudgets(context.Background())
	if err != nil {
		t.Fatalf("ListBudgets() error = %v", err)
	}
	if budgets == nil || len(budgets) != 0 {
		t.Errorf("ListBudgets() = %v, want empty slice", budgets)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("first open error = %v", err)
	}
	mustCreate(t, repo, "persisted", 42, "Other", "2025-08-01")
	if err := repo.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Second open finds the schema already migrated.
	repo2, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("second open error = %v", err)
	}
	defer repo2.Close()

	expenses, err := repo2.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	if len(expenses) != 1 || expenses[0].Description != "persisted" {
		t.Errorf("reopened data = %+v, want the persisted expense", expenses)
	}
}
