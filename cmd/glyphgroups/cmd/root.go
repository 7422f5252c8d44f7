/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/suparena/glyphgroups"
	"github.com/suparena/glyphgroups/config"
)

var (
	groupsFile string

	// registry is built by loadRegistry before any subcommand runs.
	registry *glyphgroups.Registry[string]
)

var rootCmd = &cobra.Command{
	Use:               "glyphgroups",
	Short:             "Unicode symbol palettes for text and animation tools",
	Long:              "Lists, inspects and exports the built-in and custom glyph groups.",
	SilenceUsage:      true,
	PersistentPreRunE: loadRegistry,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&groupsFile, "groups", "", "YAML group definition file (overrides GLYPHGROUPS_FILE)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadRegistry reads the environment, installs the logger and builds the
// registry, applying the configured group file on top of the built-ins.
func loadRegistry(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	glyphgroups.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	registry = glyphgroups.New[string]()

	path := groupsFile
	if path == "" {
		path = cfg.GroupsFile
	}
	if path == "" {
		return nil
	}
	if _, err := config.ApplyFile(registry, path); err != nil {
		return fmt.Errorf("load groups: %w", err)
	}
	return nil
}
