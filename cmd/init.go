package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/glasshq/glass/internal/config"
	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
	"github.com/glasshq/glass/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Glass workspace",
	Long:  "Initialize a Glass workspace by creating the .glass directory with a config.toml,\nprompting for the basic settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		useDefaults, _ := cmd.Flags().GetBool("defaults")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		root, ok := workspace.FindProjectRoot(cwd)
		if !ok {
			// Projectless workspaces keep their state in the home
			// directory.
			home, herr := os.UserHomeDir()
			if herr != nil {
				return fmt.Errorf("failed to resolve home directory: %w", herr)
			}
			root = home
		}

		glassDir := filepath.Join(root, ".glass")
		if _, err := os.Stat(glassDir); err == nil {
			return fmt.Errorf("Glass workspace already initialized\n\nLocation: %s\n\nTo reconfigure, edit %s or remove the directory and run 'glass init' again",
				root, filepath.Join(glassDir, "config.toml"))
		}

		cfg := config.DefaultConfig()
		if !useDefaults {
			if err := promptSettings(cfg); err != nil {
				return fmt.Errorf("init cancelled: %w", err)
			}
		}

		if err := os.MkdirAll(glassDir, 0755); err != nil {
			return fmt.Errorf("failed to create .glass directory: %w", err)
		}
		if err := config.SaveConfig(root, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("✓ Glass workspace initialized\n")
		fmt.Printf("  Location: %s\n", root)
		fmt.Printf("  Config:   %s\n", filepath.Join(glassDir, "config.toml"))
		fmt.Printf("\nRun 'glass' to open the workspace.\n")

		return nil
	},
}

// promptSettings collects the initial configuration interactively.
func promptSettings(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default mode").
				Description("The mode a fresh workspace opens in").
				Options(
					huh.NewOption("Editor", string(mode.Editor)),
					huh.NewOption("Terminal", string(mode.Terminal)),
				).
				Value(&cfg.Mode.Default),

			huh.NewSelect[string]().
				Title("Terminal activation").
				Description("Entering terminal mode with no sessions: create one, or wait").
				Options(
					huh.NewOption("Eager (create one on entry)", string(session.PolicyEager)),
					huh.NewOption("Lazy (wait until asked)", string(session.PolicyLazy)),
				).
				Value(&cfg.Mode.TerminalActivation),

			huh.NewInput().
				Title("Session prefix").
				Description("Prefix for tmux session names").
				Value(&cfg.Terminal.SessionPrefix),

			huh.NewConfirm().
				Title("Show the terminal dock in editor mode?").
				Value(&cfg.UI.ShowDockPanel),
		),
	).WithTheme(huh.ThemeCatppuccin())

	return form.Run()
}

func init() {
	initCmd.Flags().Bool("defaults", false, "Skip prompts and write the default config")
	rootCmd.AddCommand(initCmd)
}
