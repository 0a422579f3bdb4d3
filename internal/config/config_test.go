package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/plan_d?parseTime=true")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port default: got %q want 8080", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost default: got %d want 10", cfg.BcryptCost)
	}
	if cfg.MaxOpenConns != 5 || cfg.MaxIdleConns != 0 {
		t.Fatalf("pool defaults: got open=%d idle=%d want 5/0", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
	if cfg.AcquireTimeout != 30*time.Second {
		t.Fatalf("AcquireTimeout default: got %v want 30s", cfg.AcquireTimeout)
	}
	if cfg.ConnIdleTime != 10*time.Second {
		t.Fatalf("ConnIdleTime default: got %v want 10s", cfg.ConnIdleTime)
	}
	if cfg.PingInterval != time.Minute {
		t.Fatalf("PingInterval default: got %v want 1m", cfg.PingInterval)
	}
	// The signing secret is optional at startup; its absence is a login-time
	// error, not a boot failure.
	if cfg.JWTSecret != "" {
		t.Fatalf("JWTSecret should default to empty, got %q", cfg.JWTSecret)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "user:pass@tcp(db:3306)/plan_d?parseTime=true")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DB_MAX_OPEN_CONNS", "8")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "5s")
	t.Setenv("DB_PING_INTERVAL", "30s")

	cfg := Load()
	if cfg.Port != "9000" || cfg.JWTSecret != "k" || cfg.BcryptCost != 12 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxOpenConns != 8 || cfg.AcquireTimeout != 5*time.Second || cfg.PingInterval != 30*time.Second {
		t.Fatalf("pool overrides not applied: %+v", cfg)
	}
}
