// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries settings that vary per deployment. Detection thresholds
// are not here — they live in detection.Params, which callers tune in code.
type Config struct {
	// MaxWorkingDim bounds the working resolution of the pipeline.
	// Environment: CUEVISION_MAX_DIM. Default 800.
	MaxWorkingDim int

	// LogLevel enables debug output when set to "debug".
	// Environment: CUEVISION_LOG_LEVEL.
	LogLevel string

	// DefaultMode is the game mode assumed when the caller names none.
	// Environment: CUEVISION_GAME_MODE. Default "pool".
	DefaultMode string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MaxWorkingDim: 800,
		LogLevel:      os.Getenv("CUEVISION_LOG_LEVEL"),
		DefaultMode:   "pool",
	}

	if v := os.Getenv("CUEVISION_MAX_DIM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxWorkingDim = n
		}
	}
	if v := os.Getenv("CUEVISION_GAME_MODE"); v != "" {
		cfg.DefaultMode = v
	}

	return cfg, nil
}
