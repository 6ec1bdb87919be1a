package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30, cfg.RoundSeconds)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(0), cfg.RandSeed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ROUND_SECONDS", "5")
	t.Setenv("TICK_MS", "50")
	t.Setenv("RNG_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 5, cfg.RoundSeconds)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, int64(42), cfg.RandSeed)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroRound(t *testing.T) {
	t.Setenv("ROUND_SECONDS", "0")
	_, err := Load()
	assert.Error(t, err)
}
