package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDemoModeMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		isDemo     bool
		method     string
		path       string
		wantStatus int
	}{
		{"off allows writes", false, http.MethodPost, "/api/transactions", http.StatusOK},
		{"demo allows GET", true, http.MethodGet, "/api/transactions", http.StatusOK},
		{"demo allows login", true, http.MethodPost, "/api/login", http.StatusOK},
		{"demo allows register", true, http.MethodPost, "/api/register", http.StatusOK},
		{"demo blocks POST", true, http.MethodPost, "/api/transactions", http.StatusForbidden},
		{"demo blocks PUT", true, http.MethodPut, "/api/goals/1", http.StatusForbidden},
		{"demo blocks DELETE", true, http.MethodDelete, "/api/accounts/1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := DemoModeMiddleware(tt.isDemo)(ok)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s with demo=%v: status = %d, want %d",
					tt.method, tt.path, tt.isDemo, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	req.Header.Set("Origin", "https://fintrack.app")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://fintrack.app" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "https://fintrack.app")
	}
}

func TestCORSMiddlewareUnknownOrigin(t *testing.T) {
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}
