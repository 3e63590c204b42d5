// ABOUTME: CLI commands for inspecting and resetting bplog settings.
// ABOUTME: Operates on the config file only; never opens the database.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bplog settings",
	Long: `Inspect or reset the settings file that remembers the database
location between runs.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings file and database locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Printf("config file: %s\n", config.GetConfigPath())
		fmt.Printf("database:    %s\n", cfg.GetDBPath())
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the remembered database path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Reset(); err != nil {
			return err
		}
		color.Green("✓ Config reset")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
