/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/suparena/glyphgroups/errors"
)

// DotEnvVar names the variable that points at the dotenv file read by Load.
const DotEnvVar = "GLYPHGROUPS_DOTENV"

// Config holds the environment settings of glyphgroups tools.
type Config struct {
	// GroupsFile is an optional YAML group definition file.
	GroupsFile string `env:"GLYPHGROUPS_FILE"`
	LogLevel   string `env:"GLYPHGROUPS_LOG_LEVEL" envDefault:"warn"`
	// DotEnv is the dotenv file Load looked for.
	DotEnv string `env:"GLYPHGROUPS_DOTENV" envDefault:".env"`
	// DotEnvLoaded reports whether DotEnv existed and was read.
	DotEnvLoaded bool
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the dotenv file, if present, and then the environment. Variables
// already set in the environment take precedence over the dotenv file.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	path := cfg.DotEnv
	loaded := true
	if err := godotenv.Load(path); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = false
	}

	// Parse again so values from the dotenv file are picked up.
	cfg = Config{}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.DotEnv = path
	cfg.DotEnvLoaded = loaded
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.NewValidationError("GLYPHGROUPS_LOG_LEVEL", fmt.Sprintf("unknown level %q", c.LogLevel))
}
