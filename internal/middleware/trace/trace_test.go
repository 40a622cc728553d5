package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	if !strings.HasPrefix(id, "req_") {
		t.Errorf("request ID %q missing req_ prefix", id)
	}
	if len(id) != len("req_")+16 {
		t.Errorf("request ID %q has length %d, want %d", id, len(id), len("req_")+16)
	}
	if id == GenerateRequestID() {
		t.Error("consecutive request IDs should differ")
	}
}

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req_abc")
	if got := GetRequestID(ctx); got != "req_abc" {
		t.Errorf("GetRequestID() = %q, want req_abc", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() on empty context = %q, want empty", got)
	}
}

func TestMiddlewareInjectsRequestID(t *testing.T) {
	var seen string
	handler := NewMiddleware(func(*http.Request) string { return "1.2.3.4" }).
		Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))

	if seen == "" {
		t.Error("handler did not see a request ID")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418 passed through", rec.Code)
	}
}
