package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"financeai/internal/amqp"
	"financeai/internal/core"
	"financeai/internal/storage"
)

// ExpenseService orchestrates expense writes and reads across SQLite and the
// optional AMQP event stream.
type ExpenseService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

// NewExpenseService wires storage and the AMQP client. amqpClient may be nil
// when event publishing is disabled.
func NewExpenseService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *ExpenseService {
	return &ExpenseService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// CreateExpense validates and saves an expense, then publishes a created
// event for downstream consumers.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	stored, err := s.storage.CreateExpense(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	if err := s.publishCreatedEvent(ctx, stored); err != nil {
		// Don't fail the request - the expense is saved locally
		slog.ErrorContext(ctx, "Failed to publish expense created event",
			"id", stored.ID, "error", err)
	}

	return stored, nil
}

// ListExpenses returns all stored expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.storage.ListExpenses(ctx)
}

// MonthSummary aggregates spending for the month containing now.
func (s *ExpenseService) MonthSummary(ctx context.Context, now time.Time) (core.MonthSummary, error) {
	start, end := core.MonthRange(now)
	summary, err := s.storage.Summarize(ctx, start, end)
	if err != nil {
		return core.MonthSummary{}, fmt.Errorf("summarize month: %w", err)
	}
	return summary, nil
}

func (s *ExpenseService) publishCreatedEvent(ctx context.Context, e core.Expense) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not configured, skipping created event")
		return nil
	}
	return s.amqpClient.PublishExpenseCreated(ctx, e)
}

// Close closes both storage and AMQP connections.
func (s *ExpenseService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}

	return nil
}
