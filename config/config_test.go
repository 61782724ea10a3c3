package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"EDT_DATA_DIR", "EDT_OPEN", "EDT_CLOSE", "EDT_SLOT_MINUTES", "EDT_CACHE_TTL_SECONDS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if cfg.DataDir != "./data" {
		t.Fatalf("expected ./data, got %s", cfg.DataDir)
	}
	if cfg.Window.Start != 8*60 || cfg.Window.End != 20*60 {
		t.Fatalf("expected 08:00-20:00 window, got %+v", cfg.Window)
	}
	if cfg.SlotMinutes != 30 {
		t.Fatalf("expected 30-minute slots, got %d", cfg.SlotMinutes)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s TTL, got %s", cfg.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDT_DATA_DIR", "/srv/edt")
	t.Setenv("EDT_OPEN", "07:30")
	t.Setenv("EDT_CLOSE", "22:00")
	t.Setenv("EDT_SLOT_MINUTES", "15")
	t.Setenv("EDT_CACHE_TTL_SECONDS", "120")

	cfg := Load()
	if cfg.DataDir != "/srv/edt" {
		t.Fatalf("expected /srv/edt, got %s", cfg.DataDir)
	}
	if cfg.Window.Start != 7*60+30 || cfg.Window.End != 22*60 {
		t.Fatalf("unexpected window %+v", cfg.Window)
	}
	if cfg.SlotMinutes != 15 || cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected slots/ttl %+v", cfg)
	}
}

func TestLoadRejectsInvertedWindow(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDT_OPEN", "20:00")
	t.Setenv("EDT_CLOSE", "08:00")
	cfg := Load()
	if cfg.Window.Start != 8*60 || cfg.Window.End != 20*60 {
		t.Fatalf("expected fallback to default window, got %+v", cfg.Window)
	}
}
