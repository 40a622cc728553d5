// Package worker mirrors expense created events into a spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"financeai/internal/amqp"
	"financeai/internal/core"
	"financeai/internal/sheets"
)

// Mirror appends expense created events to an external spreadsheet. It keeps
// no state of its own, so with at-least-once delivery a redelivered event
// appends its row again.
type Mirror struct {
	appender sheets.ExpenseAppender
}

func NewMirror(appender sheets.ExpenseAppender) *Mirror {
	return &Mirror{appender: appender}
}

// HandleExpenseCreated processes one expense created event. A message with
// an unparseable date can never succeed, so it is logged and dropped rather
// than returned for requeue.
func (m *Mirror) HandleExpenseCreated(ctx context.Context, msg *amqp.ExpenseCreatedMessage) error {
	date, err := core.ParseDate(msg.Date)
	if err != nil {
		slog.ErrorContext(ctx, "Dropping event with invalid date",
			"id", msg.ID,
			"date", msg.Date,
			"error", err)
		return nil
	}

	expense := core.Expense{
		ID:          msg.ID,
		Description: msg.Description,
		Amount:      msg.Amount,
		Category:    msg.Category,
		Date:        date,
		CreatedAt:   msg.CreatedAt,
	}

	ref, err := m.appender.AppendExpense(ctx, expense)
	if err != nil {
		return fmt.Errorf("append expense %d: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Mirrored expense",
		"id", msg.ID,
		"category", msg.Category,
		"sheets_ref", ref)

	return nil
}
