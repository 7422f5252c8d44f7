/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/glyphgroups/errors"
)

type envTestConfig struct {
	Limit int `env:"GLYPHGROUPS_TEST_LIMIT" envDefault:"123"`
}

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Limit)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GLYPHGROUPS_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		unsetEnv(t, "GLYPHGROUPS_FILE")
		unsetEnv(t, "GLYPHGROUPS_LOG_LEVEL")
		missing := filepath.Join(t.TempDir(), "missing.env")
		t.Setenv(DotEnvVar, missing)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.GroupsFile)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, missing, cfg.DotEnv)
		assert.False(t, cfg.DotEnvLoaded)

		level, err := cfg.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, level)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		unsetEnv(t, "GLYPHGROUPS_FILE")
		unsetEnv(t, "GLYPHGROUPS_LOG_LEVEL")

		path := filepath.Join(t.TempDir(), "test.env")
		content := "GLYPHGROUPS_FILE=groups.yaml\nGLYPHGROUPS_LOG_LEVEL=debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv(DotEnvVar, path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "groups.yaml", cfg.GroupsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, path, cfg.DotEnv)
		assert.True(t, cfg.DotEnvLoaded)
	})

	t.Run("DefaultDotEnvPath", func(t *testing.T) {
		unsetEnv(t, DotEnvVar)
		chdir(t, t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ".env", cfg.DotEnv)
		assert.False(t, cfg.DotEnvLoaded)
	})

	t.Run("EnvironmentWinsOverDotEnv", func(t *testing.T) {
		t.Setenv("GLYPHGROUPS_LOG_LEVEL", "error")

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("GLYPHGROUPS_LOG_LEVEL=debug\n"), 0o600))
		t.Setenv(DotEnvVar, path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("BadLevel", func(t *testing.T) {
		t.Setenv("GLYPHGROUPS_LOG_LEVEL", "loud")
		t.Setenv(DotEnvVar, filepath.Join(t.TempDir(), "missing.env"))

		_, err := Load()
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"":        slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range tests {
		got, err := Config{LogLevel: input}.SlogLevel()
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
