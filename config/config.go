package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"edt-finder-cli/engine"
	"edt-finder-cli/model"
)

// Config carries the tool-wide settings: where the corpus lives and how
// the opening window and cache behave.
type Config struct {
	DataDir     string
	Window      model.Interval
	SlotMinutes int
	CacheTTL    time.Duration
}

// Load reads an optional .env file, then environment variables, falling
// back to defaults: ./data, 08:00-20:00 opening window, 30-minute slots.
func Load() *Config {
	// Missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	slotMinutes, err := strconv.Atoi(getEnv("EDT_SLOT_MINUTES", "30"))
	if err != nil || slotMinutes <= 0 {
		slotMinutes = engine.DefaultSlotMinutes
	}
	ttlSeconds, err := strconv.Atoi(getEnv("EDT_CACHE_TTL_SECONDS", "30"))
	if err != nil || ttlSeconds <= 0 {
		ttlSeconds = 30
	}

	return &Config{
		DataDir:     getEnv("EDT_DATA_DIR", "./data"),
		Window:      windowFromEnv(),
		SlotMinutes: slotMinutes,
		CacheTTL:    time.Duration(ttlSeconds) * time.Second,
	}
}

func windowFromEnv() model.Interval {
	open, err := model.ParseClock(getEnv("EDT_OPEN", "08:00"))
	if err != nil {
		return engine.DefaultWindow
	}
	close, err := model.ParseClock(getEnv("EDT_CLOSE", "20:00"))
	if err != nil || close <= open {
		return engine.DefaultWindow
	}
	return model.Interval{Start: open, End: close}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
