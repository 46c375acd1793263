package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/NamanBalaji/tmodal/internal/config"
	"github.com/NamanBalaji/tmodal/internal/dialog"
	"github.com/NamanBalaji/tmodal/internal/logger"
	"github.com/NamanBalaji/tmodal/internal/repository"
	"github.com/NamanBalaji/tmodal/internal/tui"
)

var version = "dev"

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "tmodal",
	Short: "Modal dialogs for the terminal",
	Long: `tmodal - A modal dialog panel for the terminal.

Dialogs are shown on a single panel with a fixed pool of button slots. Pressing
any button runs its action and closes the panel. Every dialog is recorded in a
local history database.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.BindFlags(rootCmd.PersistentFlags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading config %s: %w", config.Path(), err)
	}

	err = logger.InitLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logging: %v\n", err)
	}
	defer logger.Close()

	repo, err := openHistory(cfg.History.Path)
	if err != nil {
		logger.Errorf("Error opening history: %v", err)
		return err
	}
	defer repo.Close()

	widgets := tui.NewWidgets(cfg.Slots)

	manager, err := dialog.New(widgets.Panel, widgets.SlotWidgets(),
		dialog.WithObserver(repository.NewHistoryObserver(repo)))
	if err != nil {
		return err
	}

	dialog.Install(manager)
	defer dialog.Uninstall()

	logger.Infof("Starting tmodal %s with %d button slots", version, cfg.Slots)

	err = tui.Run(widgets, tui.Options{
		History:        repo,
		HistoryLimit:   cfg.History.Limit,
		MessageTimeout: cfg.MessageTimeout,
	})
	if err != nil {
		logger.Errorf("TUI error: %v", err)
		return err
	}

	logger.Infof("TUI has exited.")

	return nil
}

// openHistory opens the history database at path, creating its directory.
func openHistory(path string) (*repository.BoltDBRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating history directory: %w", err)
	}

	return repository.NewBoltDBRepository(path)
}
