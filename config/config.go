// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls diagnostics. None of it changes the computed scores.
type Config struct {
	LogLevel  string `env:"COMBAT_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"COMBAT_LOG_FORMAT" envDefault:"text"`
	MaxDepth  int    `env:"COMBAT_MAX_DEPTH"  envDefault:"0"`
}

// Load reads an optional .env file from files (default ".env"), then
// parses the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return ParseEnv()
}

// ParseEnv parses the environment without reading any file.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("parse env: COMBAT_MAX_DEPTH must not be negative, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}
