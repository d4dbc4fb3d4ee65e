package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("user_id").(string)
		gotEmail, _ = r.Context().Value("email").(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTAuthMiddleware(next)

	validClaims := jwt.MapClaims{
		"user_id": "u-1",
		"email":   "a@b.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + signToken(t, "test-secret", validClaims), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", validClaims), http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{
			"expired token",
			"Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"user_id": "u-1",
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}),
			http.StatusUnauthorized,
		},
		{
			"missing user_id claim",
			"Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"email": "a@b.com",
				"exp":   time.Now().Add(time.Hour).Unix(),
			}),
			http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotEmail = "", ""
			req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotUserID != "u-1" {
					t.Errorf("user_id in context = %q, want %q", gotUserID, "u-1")
				}
				if gotEmail != "a@b.com" {
					t.Errorf("email in context = %q, want %q", gotEmail, "a@b.com")
				}
			}
		})
	}
}
