package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Port         int
	Environment  string
	LogLevel     string
	RoundSeconds int           // countdown length per round
	TickInterval time.Duration // countdown tick cadence
	RandSeed     int64         // 0 means seed from the clock
}

// Load reads configuration from the environment, with a .env file as an
// optional source of it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	port, err := intEnv("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	rounds, err := intEnv("ROUND_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	if rounds < 1 {
		return nil, fmt.Errorf("ROUND_SECONDS must be at least 1, got %d", rounds)
	}
	cfg.RoundSeconds = rounds

	tickMS, err := intEnv("TICK_MS", 1000)
	if err != nil {
		return nil, err
	}
	if tickMS < 1 {
		return nil, fmt.Errorf("TICK_MS must be at least 1, got %d", tickMS)
	}
	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond

	seed, err := intEnv("RNG_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.RandSeed = int64(seed)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}
