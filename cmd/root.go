package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glasshq/glass/internal/config"
	"github.com/glasshq/glass/internal/logger"
	"github.com/glasshq/glass/internal/tui"
	"github.com/glasshq/glass/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "glass",
	Short: "Glass - workspace presentation modes",
	Long:  "Glass presents one workspace through switchable full-screen modes:\nan editor mode and a terminal mode sharing the same terminal sessions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
	SilenceUsage: true,
}

// loadManager resolves the workspace for the current directory: project
// root detection, configuration, and the workspace manager. Commands
// share this so a projectless invocation behaves identically everywhere.
func loadManager() (*workspace.Manager, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	root, ok := workspace.FindProjectRoot(cwd)
	configDir := root
	if !ok {
		// No project: config and state live in the home directory.
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil, nil, fmt.Errorf("failed to resolve home directory: %w", herr)
		}
		configDir = home
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	mgr, err := workspace.NewManager(cwd, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create workspace manager: %w", err)
	}

	return mgr, cfg, nil
}

// runTUI launches the Bubbletea application and blocks until it exits.
func runTUI() error {
	mgr, cfg, err := loadManager()
	if err != nil {
		return err
	}

	ctx := tui.NewContext(cfg, mgr)
	app := tui.NewApp(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	app.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Let the last mode switch reach disk before the process exits.
	if c := app.Controller(); c != nil {
		c.Flush()
	}

	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
