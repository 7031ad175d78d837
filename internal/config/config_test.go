package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("VISITS_RETENTION_LIMIT", "")
	t.Setenv("VISITS_DEDUP_TTL_SECONDS", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Name != "portfolio-service" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Visits.RetentionLimit != 30 {
		t.Errorf("Visits.RetentionLimit = %d, want 30", cfg.Visits.RetentionLimit)
	}
	if cfg.Visits.DedupTTL() != 0 {
		t.Errorf("DedupTTL = %v, want disabled", cfg.Visits.DedupTTL())
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.App.RequestTimeout())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("VISITS_RETENTION_LIMIT", "5")
	t.Setenv("VISITS_DEDUP_TTL_SECONDS", "120")
	t.Setenv("AUTH_BCRYPT_COST", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := cfg.App.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr = %q", got)
	}
	if cfg.Visits.RetentionLimit != 5 {
		t.Errorf("RetentionLimit = %d", cfg.Visits.RetentionLimit)
	}
	if cfg.Visits.DedupTTL() != 2*time.Minute {
		t.Errorf("DedupTTL = %v", cfg.Visits.DedupTTL())
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Errorf("BcryptCost = %d", cfg.Auth.BcryptCost)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("VISITS_RETENTION_LIMIT", "not-a-number")
	t.Setenv("REDIS_DB", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Visits.RetentionLimit != 30 {
		t.Errorf("RetentionLimit = %d, want default 30", cfg.Visits.RetentionLimit)
	}
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "oops")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}
