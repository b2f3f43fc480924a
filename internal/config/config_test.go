package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MERGINGTON_AUTH_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl: %v", cfg.TokenTTL)
	}
	if cfg.TeachersFile != "teachers.json" {
		t.Fatalf("unexpected teachers file: %s", cfg.TeachersFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MERGINGTON_AUTH_SECRET", "test-secret")
	t.Setenv("MERGINGTON_ADDR", ":9999")
	t.Setenv("MERGINGTON_TOKEN_TTL", "1h")
	t.Setenv("MERGINGTON_ACTIVITIES_FILE", "/tmp/activities.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.TokenTTL != time.Hour || cfg.ActivitiesFile != "/tmp/activities.json" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("MERGINGTON_AUTH_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when secret is unset")
	}
}
