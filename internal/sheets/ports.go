package sheets

import (
	"context"

	"financeai/internal/core"
)

// ExpenseAppender mirrors stored expenses into an external spreadsheet.
// Implementations return a reference to the written row.
type ExpenseAppender interface {
	AppendExpense(ctx context.Context, e core.Expense) (string, error)
}
