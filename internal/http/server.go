// Package http exposes the FinanceAI JSON API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"financeai/internal/classifier"
	"financeai/internal/core"
	"financeai/internal/middleware/ratelimit"
	"financeai/internal/middleware/security"
	"financeai/internal/middleware/trace"
)

// ExpenseStore is the expense surface the handlers need.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error)
	ListExpenses(ctx context.Context) ([]core.Expense, error)
	MonthSummary(ctx context.Context, now time.Time) (core.MonthSummary, error)
}

// BudgetStore is the budget surface the handlers need.
type BudgetStore interface {
	SetBudget(ctx context.Context, b core.Budget) error
	ListBudgets(ctx context.Context) ([]core.Budget, error)
	Alerts(ctx context.Context, now time.Time) ([]core.Alert, error)
}

// Predictor serves category predictions and retrains the model on demand.
type Predictor interface {
	Predict(description string) (classifier.Prediction, error)
	Retrain(ctx context.Context) (*classifier.Pipeline, error)
	Current() *classifier.Pipeline
}

type Server struct {
	http.Server
	expenses ExpenseStore
	budgets  BudgetStore
	model    Predictor
	limiter  *ratelimit.Limiter

	shutdownOnce sync.Once
}

// NewServer builds the API server with routing, tracing, CORS and rate
// limiting wired in. Write endpoints are rate limited per client IP.
func NewServer(addr string, expenses ExpenseStore, budgets BudgetStore, model Predictor, rl ratelimit.Config) *Server {
	mux := http.NewServeMux()

	s := &Server{
		expenses: expenses,
		budgets:  budgets,
		model:    model,
		limiter:  ratelimit.NewLimiter(rl),
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/predict", s.withRateLimit(s.handlePredict))
	mux.HandleFunc("/expense", s.withRateLimit(s.handleCreateExpense))
	mux.HandleFunc("/expenses", s.handleListExpenses)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/budget", s.withRateLimit(s.handleSetBudget))
	mux.HandleFunc("/budgets", s.handleListBudgets)
	mux.HandleFunc("/alerts", s.handleAlerts)
	mux.HandleFunc("/retrain", s.withRateLimit(s.handleRetrain))

	tracer := trace.NewMiddleware(extractClientIP)
	harden := security.Headers(security.DefaultHeadersConfig())
	s.Server = http.Server{
		Addr:    addr,
		Handler: tracer.Middleware(harden(mux)),
	}

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withRateLimit throttles POST requests per client IP. Other methods fall
// through to the handler's own method check.
func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)
		if r.Method == http.MethodPost && !s.limiter.Allow(clientIP) {
			slog.WarnContext(r.Context(), "Rate limit exceeded",
				"client_ip", clientIP,
				"url", r.URL.Path,
			)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next(w, r)
	}
}

// extractClientIP prefers proxy headers over the socket address.
func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "FinanceAI API is running 🚀",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.model.Current() == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("model not loaded"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
