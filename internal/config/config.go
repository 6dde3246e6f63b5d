// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the process configuration, loaded from the environment with a
// .env file as optional overlay.
type Config struct {
	LogLevel    logrus.Level // BOARDWALK_LOG_LEVEL
	Players     int          // BOARDWALK_PLAYERS
	Seed        uint64       // BOARDWALK_SEED (0 = time-derived)
	TickSeconds float64      // BOARDWALK_TICK_SECONDS

	RedisAddr  string // BOARDWALK_REDIS_ADDR (empty disables the journal)
	JournalKey string // BOARDWALK_JOURNAL_KEY

	SnapshotDSN string // BOARDWALK_SNAPSHOT_DSN (empty disables persistence)
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:    logrus.InfoLevel,
		Players:     4,
		TickSeconds: 0.1,
		JournalKey:  "boardwalk:actions",
		RedisAddr:   getenv("BOARDWALK_REDIS_ADDR", ""),
		SnapshotDSN: getenv("BOARDWALK_SNAPSHOT_DSN", ""),
	}
	if v := os.Getenv("BOARDWALK_JOURNAL_KEY"); v != "" {
		cfg.JournalKey = v
	}
	if v := os.Getenv("BOARDWALK_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: BOARDWALK_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv("BOARDWALK_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: BOARDWALK_PLAYERS: %w", err)
		}
		cfg.Players = n
	}
	if v := os.Getenv("BOARDWALK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: BOARDWALK_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BOARDWALK_TICK_SECONDS"); v != "" {
		tick, err := strconv.ParseFloat(v, 64)
		if err != nil || tick <= 0 {
			return Config{}, fmt.Errorf("config: BOARDWALK_TICK_SECONDS: %q is not a positive duration", v)
		}
		cfg.TickSeconds = tick
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
