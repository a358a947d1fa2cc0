package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL == "" {
		t.Error("APIURL must have a default")
	}
	if cfg.PollInterval != 3*time.Second {
		t.Errorf("PollInterval = %s, want 3s default", cfg.PollInterval)
	}
	if !cfg.Haptics {
		t.Error("haptics must default on")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PULSE_API_URL", "http://localhost:8000")
	t.Setenv("PULSE_USER_ID", "42")
	t.Setenv("PULSE_USERNAME", "tester")
	t.Setenv("PULSE_POLL_INTERVAL", "500ms")
	t.Setenv("PULSE_HAPTICS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" || cfg.UserID != 42 || cfg.Username != "tester" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %s, want 500ms", cfg.PollInterval)
	}
	if cfg.Haptics {
		t.Error("haptics override not applied")
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("PULSE_POLL_INTERVAL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero poll interval")
	}
}
