package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.SettingsPath != "data/settings.db" {
		t.Fatalf("settings path = %q", cfg.SettingsPath)
	}
	if cfg.HolidaySourceURL != "https://www.argies.gr" {
		t.Fatalf("holiday source = %q", cfg.HolidaySourceURL)
	}
	if cfg.ImportTimeout != 15*time.Second {
		t.Fatalf("import timeout = %v", cfg.ImportTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("IMPORT_TIMEOUT", "30s")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.ImportTimeout != 30*time.Second {
		t.Fatalf("import timeout = %v", cfg.ImportTimeout)
	}
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("IMPORT_TIMEOUT", "soon")

	cfg := Load()
	if cfg.ImportTimeout != 15*time.Second {
		t.Fatalf("import timeout = %v, want default", cfg.ImportTimeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.SettingsPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without any settings backend")
	}

	cfg.DatabaseURL = "postgres://localhost/adeia"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("postgres-only config invalid: %v", err)
	}

	cfg.ImportTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive import timeout")
	}
}
