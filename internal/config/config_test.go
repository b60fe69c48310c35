package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("unexpected port: %q", cfg.Server.Port)
	}
	if cfg.Database.Name != "coursemart" {
		t.Fatalf("unexpected database name: %q", cfg.Database.Name)
	}
	if cfg.JWT.CookieName != "token" {
		t.Fatalf("unexpected cookie name: %q", cfg.JWT.CookieName)
	}
	if cfg.TokenTTL() != 24*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.TokenTTL())
	}
	if cfg.IsProduction() {
		t.Fatalf("default mode must not be production")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("JWT_TOKEN_TTL", "1h")
	t.Setenv("PAYMENT_SANDBOX", "false")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("env port override failed: %q", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://db:27017" {
		t.Fatalf("env uri override failed: %q", cfg.Database.URI)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Fatalf("env ttl override failed: %v", cfg.TokenTTL())
	}
	if cfg.Payment.Sandbox {
		t.Fatalf("env bool override failed")
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing JWT secret")
	}
}

func TestLoadConfigRejectsBadTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("JWT_TOKEN_TTL", "yesterday")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for invalid token ttl")
	}
}

func TestOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.Server.ClientOrigins = "http://a.example, http://b.example ,"

	origins := cfg.Origins()
	if len(origins) != 2 || origins[0] != "http://a.example" || origins[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %#v", origins)
	}
}
