package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"financeai/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists expenses and budgets in a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense inserts the expense and returns it with the assigned ID and
// creation timestamp filled in.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO expenses (description, amount, category, date)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, created_at`,
		e.Description, e.Amount, e.Category, e.Date.String(),
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"category", e.Category,
		"amount", e.Amount,
		"date", e.Date.String())

	return e, nil
}

// ListExpenses returns every expense, newest date first, ties broken by
// descending ID.
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, date, created_at
		 FROM expenses
		 ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []core.Expense{}
	for rows.Next() {
		var (
			e       core.Expense
			rawDate string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &rawDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		date, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("expense %d: bad date %q: %w", e.ID, rawDate, err)
		}
		e.Date = date
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// SumByCategory totals spending per category for dates in [start, end).
func (r *SQLiteRepository) SumByCategory(ctx context.Context, start, end string) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) AS total
		 FROM expenses
		 WHERE date >= ? AND date < ?
		 GROUP BY category`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var (
			category string
			total    float64
		)
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals[category] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category totals: %w", err)
	}

	return totals, nil
}

// Summarize aggregates spending for dates in [start, end): grand total, row
// count, and per-category totals largest first.
func (r *SQLiteRepository) Summarize(ctx context.Context, start, end string) (core.MonthSummary, error) {
	var (
		summary core.MonthSummary
		total   sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(amount), COUNT(*) FROM expenses WHERE date >= ? AND date < ?`,
		start, end).Scan(&total, &summary.ExpenseCount)
	if err != nil {
		return core.MonthSummary{}, fmt.Errorf("sum expenses: %w", err)
	}
	summary.TotalSpent = total.Float64

	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) AS total
		 FROM expenses
		 WHERE date >= ? AND date < ?
		 GROUP BY category
		 ORDER BY total DESC`,
		start, end)
	if err != nil {
		return core.MonthSummary{}, fmt.Errorf("sum categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return core.MonthSummary{}, fmt.Errorf("scan category total: %w", err)
		}
		summary.ByCategory = append(summary.ByCategory, ct)
	}
	if err := rows.Err(); err != nil {
		return core.MonthSummary{}, fmt.Errorf("iterate category totals: %w", err)
	}

	return summary, nil
}

// UpsertBudget inserts the budget or replaces the amount for an existing
// category.
func (r *SQLiteRepository) UpsertBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (category, budget) VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET budget = excluded.budget, updated_at = datetime('now')`,
		b.Category, b.Budget)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget set",
		"category", b.Category,
		"budget", b.Budget)

	return nil
}

// ListBudgets returns all budgets in category order.
func (r *SQLiteRepository) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, budget, updated_at FROM budgets ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []core.Budget{}
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.Category, &b.Budget, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}

	return budgets, nil
}
