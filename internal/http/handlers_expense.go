package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"financeai/internal/core"
)

type expenseRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
}

type expenseCreatedResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        core.Date `json:"date"`
	Message     string    `json:"message"`
}

type expenseListResponse struct {
	Expenses []core.Expense `json:"expenses"`
	Count    int            `json:"count"`
}

type summaryResponse struct {
	TotalSpent   float64            `json:"total_spent"`
	ExpenseCount int                `json:"expense_count"`
	ByCategory   map[string]float64 `json:"by_category"`
	TopCategory  *string            `json:"top_category"`
	Month        string             `json:"month"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req expenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Description == nil {
		respondError(w, http.StatusBadRequest, "Missing field: description")
		return
	}
	if req.Amount == nil {
		respondError(w, http.StatusBadRequest, "Missing field: amount")
		return
	}

	description := strings.TrimSpace(*req.Description)
	if description == "" {
		respondError(w, http.StatusBadRequest, "Description cannot be empty")
		return
	}
	amount := *req.Amount
	if amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	// Auto-predict the category when the caller leaves it out.
	category := strings.TrimSpace(req.Category)
	if category == "" {
		pred, err := s.model.Predict(description)
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to predict category",
				"error", err, "description", description)
			respondError(w, http.StatusServiceUnavailable, "Model not ready")
			return
		}
		category = pred.Category
	}

	date := core.Today()
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := core.ParseDate(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stored, err := s.expenses.CreateExpense(r.Context(), core.Expense{
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save expense",
			"error", err, "description", description, "amount", amount, "category", category)
		respondError(w, http.StatusInternalServerError, "Failed to save expense")
		return
	}

	respondJSON(w, http.StatusCreated, expenseCreatedResponse{
		ID:          stored.ID,
		Description: stored.Description,
		Amount:      stored.Amount,
		Category:    stored.Category,
		Date:        stored.Date,
		Message:     "Expense added successfully",
	})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	expenses, err := s.expenses.ListExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list expenses", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to list expenses")
		return
	}

	respondJSON(w, http.StatusOK, expenseListResponse{
		Expenses: expenses,
		Count:    len(expenses),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	summary, err := s.expenses.MonthSummary(r.Context(), now)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to summarize month", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to summarize month")
		return
	}

	byCategory := make(map[string]float64, len(summary.ByCategory))
	for _, ct := range summary.ByCategory {
		byCategory[ct.Category] = core.Round2(ct.Total)
	}
	var top *string
	if t := summary.TopCategory(); t != "" {
		top = &t
	}

	respondJSON(w, http.StatusOK, summaryResponse{
		TotalSpent:   core.Round2(summary.TotalSpent),
		ExpenseCount: summary.ExpenseCount,
		ByCategory:   byCategory,
		TopCategory:  top,
		Month:        core.MonthLabel(now),
	})
}
