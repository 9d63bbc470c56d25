package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List this workspace's terminal sessions",
	Long:  "List the live tmux sessions belonging to this workspace. Sessions are\nworkspace-owned: they exist whether or not any Glass instance is running.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		mgr, cfg, err := loadManager()
		if err != nil {
			return err
		}

		if !mgr.Tmux().IsInstalled() {
			return fmt.Errorf("tmux is not installed; run 'glass doctor' for details")
		}

		names, err := mgr.Tmux().ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list tmux sessions: %w", err)
		}

		prefix := cfg.Terminal.SessionPrefix + "-"
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tWORKSPACE")

		count := 0
		for _, name := range names {
			if !all && !strings.HasPrefix(name, prefix) {
				continue
			}
			ws := "-"
			if strings.HasPrefix(name, prefix) {
				ws = strings.TrimPrefix(name, prefix)
			}
			fmt.Fprintf(w, "%s\t%s\n", name, ws)
			count++
		}
		w.Flush()

		if count == 0 {
			fmt.Println("\nNo sessions. Open terminal mode in 'glass' to create one.")
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Bool("all", false, "Include tmux sessions not created by Glass")
	rootCmd.AddCommand(sessionsCmd)
}
