package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("FINTRACK_TEST_KEY", "set-value")

	if got := getEnv("FINTRACK_TEST_KEY", "fallback"); got != "set-value" {
		t.Errorf("getEnv returned %q, want set value", got)
	}
	if got := getEnv("FINTRACK_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv returned %q, want fallback", got)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DEMO_MODE", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.DemoMode {
		t.Errorf("DemoMode should be true")
	}
}
