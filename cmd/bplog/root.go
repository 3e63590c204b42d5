// ABOUTME: Root Cobra command for bplog CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harperreed/bplog/internal/config"
	"github.com/harperreed/bplog/internal/logging"
	"github.com/harperreed/bplog/internal/storage"
)

var (
	repo storage.Repository
	log  *logrus.Logger

	dbFlag   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "bplog",
	Short: "Record and graph blood pressure measurements",
	Long: `Bplog is a CLI tool for logging blood pressure readings.

QUICK START:

  $ bplog add 120:80                      # Log a reading, dated now
  $ bplog add 135:85 -c "after coffee"    # Log with a comment
  $ bplog add 118:76 -d 2024-12-14 -t 07:30
  $ bplog list                            # Table of all readings + average
  $ bplog remove -d 2024-12-14            # Remove a reading by date
  $ bplog remove --last                   # Undo the last insert
  $ bplog export                          # Write bplog_database.csv
  $ bplog plot                            # Terminal chart over time

DATA STORAGE:

  Readings live in a SQLite file, by default at
  ~/.local/share/bplog/bplog.db. Pass --db once to use another location;
  bplog remembers it in ~/.config/bplog/config.toml for later runs.
  'bplog config reset' forgets the remembered path.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config inspection works without touching the database
		if skipStoreInit(cmd) {
			return nil
		}

		log = logging.NewLogger(logLevel)

		dbPath, err := resolveDBPath()
		if err != nil {
			return err
		}

		db, err := storage.Open(dbPath, log)
		if err != nil {
			return fmt.Errorf("failed to open measurement store: %w", err)
		}
		repo = db
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// skipStoreInit reports whether cmd runs without an open database.
func skipStoreInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", "config":
			return true
		}
	}
	return false
}

// resolveDBPath picks the database location: the --db flag when given
// (and remembers it for later runs), otherwise the remembered or default
// path from the config file.
func resolveDBPath() (string, error) {
	if dbFlag != "" {
		path := config.ExpandPath(dbFlag)
		if path == "." {
			cwd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("resolve working directory: %w", err)
			}
			path = filepath.Join(cwd, "bplog.db")
		}
		if err := config.Remember(path); err != nil {
			return "", fmt.Errorf("failed to remember database path: %w", err)
		}
		return path, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.GetDBPath(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database file ('.' for ./bplog.db); remembered for later runs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
}
