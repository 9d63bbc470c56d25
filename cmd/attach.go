package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach [session-name]",
	Short: "Attach to a workspace terminal session",
	Long:  "Attach the current terminal to one of this workspace's tmux sessions without\nlaunching the shell. With no argument, the first workspace session is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := loadManager()
		if err != nil {
			return err
		}

		if !mgr.Tmux().IsInstalled() {
			return fmt.Errorf("tmux is not installed; run 'glass doctor' for details")
		}

		if len(args) == 1 {
			name := args[0]
			if !mgr.Tmux().HasSession(name) {
				return fmt.Errorf("no tmux session named %q", name)
			}
			return mgr.Tmux().AttachSession(name)
		}

		names, err := mgr.Tmux().ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list tmux sessions: %w", err)
		}

		prefix := cfg.Terminal.SessionPrefix + "-"
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				return mgr.Tmux().AttachSession(name)
			}
		}

		return fmt.Errorf("no workspace sessions; open terminal mode in 'glass' to create one")
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
}
