package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSigningSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is unset")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Auth.AccessTokenTTL() != 30*time.Minute {
		t.Errorf("access TTL = %v, want 30m", cfg.Auth.AccessTokenTTL())
	}
	if cfg.Auth.RefreshTokenTTL() != 168*time.Hour {
		t.Errorf("refresh TTL = %v, want 168h", cfg.Auth.RefreshTokenTTL())
	}
	if cfg.Auth.LinkTokenTTL() != 24*time.Hour {
		t.Errorf("link TTL = %v, want 24h", cfg.Auth.LinkTokenTTL())
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr = %q, want 0.0.0.0:8080", cfg.App.Addr())
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.AccessTokenTTL() != 5*time.Minute {
		t.Errorf("access TTL = %v, want 5m", cfg.Auth.AccessTokenTTL())
	}
	if cfg.App.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.App.Port)
	}
}
