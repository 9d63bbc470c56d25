package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glasshq/glass/internal/deps"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external dependencies",
	Long:  "Check that tmux and git are installed and usable. Terminal mode needs tmux;\ngit is optional and only improves project root detection.",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := deps.CheckAll()

		failed := false
		for _, r := range results {
			switch {
			case r.Error != nil:
				fmt.Printf("✗ %s: %v\n", r.Name, r.Error)
				if r.Name == "tmux" {
					failed = true
				}
			case r.Version != nil:
				fmt.Printf("✓ %s %s\n", r.Name, r.Version)
			default:
				fmt.Printf("✓ %s\n", r.Name)
			}
		}

		if failed {
			return fmt.Errorf("required dependencies are missing")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
