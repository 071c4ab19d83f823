// Package main implements the stairtrek CLI: a terminal tracker for a
// stair-climbing challenge measured against a real mountain.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stairtrek/internal/config"
	"github.com/fyrsmithlabs/stairtrek/internal/logging"
	"github.com/fyrsmithlabs/stairtrek/internal/record"
	"github.com/fyrsmithlabs/stairtrek/internal/tui"
)

var (
	configPath string
	dataPath   string
	// version information (set via ldflags during build)
	version = "dev"
	// nowFunc is swapped out in tests
	nowFunc = time.Now
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stairtrek",
	Short: "Track stair climbing progress against a mountain summit",
	Long: `stairtrek tracks daily stair-climbing in a local CSV file and shows
progress toward climbing the equivalent height of a mountain.

Running stairtrek with no arguments opens the interactive dashboard.

Examples:
  # Open the dashboard
  stairtrek

  # One-shot summary for scripts
  stairtrek stats

  # Use a different data file
  stairtrek --data ~/climbs.csv`,
	Version: version,
	RunE:    runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/stairtrek/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "data file (overrides config)")
	rootCmd.AddCommand(statsCmd)
}

// loadConfig resolves the effective configuration for any subcommand.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataPath != "" {
		cfg.Storage.DataFile = dataPath
	}
	return cfg, nil
}

// runTUI starts the interactive dashboard.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := record.NewStore(cfg.Storage.DataFile, logger)

	watcher, err := record.NewWatcher(cfg.Storage.DataFile)
	if err != nil {
		// Live reload is a convenience; run without it.
		logger.Warn("file watcher unavailable", zap.Error(err))
		watcher = nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watcher != nil {
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("file watcher failed to start", zap.Error(err))
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := tui.New(cfg, store, watcher, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
