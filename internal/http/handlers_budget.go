package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"financeai/internal/core"
)

type budgetRequest struct {
	Category *string  `json:"category"`
	Budget   *float64 `json:"budget"`
}

type budgetSetResponse struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Message  string  `json:"message"`
}

type budgetListResponse struct {
	Budgets map[string]float64 `json:"budgets"`
}

type alertsResponse struct {
	Alerts []core.Alert `json:"alerts"`
	Count  int          `json:"count"`
	Month  string       `json:"month"`
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req budgetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Category == nil || req.Budget == nil {
		respondError(w, http.StatusBadRequest, "Missing 'category' or 'budget'")
		return
	}

	budget := core.Budget{
		Category: strings.TrimSpace(*req.Category),
		Budget:   *req.Budget,
	}
	if err := s.budgets.SetBudget(r.Context(), budget); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidBudget):
			respondError(w, http.StatusBadRequest, "Budget must be positive")
		case errors.Is(err, core.ErrEmptyCategory):
			respondError(w, http.StatusBadRequest, "Category cannot be empty")
		default:
			slog.ErrorContext(r.Context(), "Failed to save budget",
				"error", err, "category", budget.Category)
			respondError(w, http.StatusInternalServerError, "Failed to save budget")
		}
		return
	}

	respondJSON(w, http.StatusOK, budgetSetResponse{
		Category: budget.Category,
		Budget:   budget.Budget,
		Message:  fmt.Sprintf("Budget for %s set to %.0f", budget.Category, budget.Budget),
	})
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	budgets, err := s.budgets.ListBudgets(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list budgets", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to list budgets")
		return
	}

	byCategory := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		byCategory[b.Category] = b.Budget
	}

	respondJSON(w, http.StatusOK, budgetListResponse{Budgets: byCategory})
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	alerts, err := s.budgets.Alerts(r.Context(), now)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute alerts", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to compute alerts")
		return
	}

	respondJSON(w, http.StatusOK, alertsResponse{
		Alerts: alerts,
		Count:  len(alerts),
		Month:  core.MonthLabel(now),
	})
}
