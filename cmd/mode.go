package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/tui"
)

var modeCmd = &cobra.Command{
	Use:   "mode [" + strings.Join(modeNames(), "|") + "]",
	Short: "Show or set the workspace's active mode",
	Long:  "With no argument, print the mode this workspace will open in.\nWith an argument, record that mode so the next 'glass' run opens in it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cfg, err := loadManager()
		if err != nil {
			return err
		}

		// Validate against the same registration the TUI uses, so a
		// mode added there is immediately accepted here.
		registry := mode.NewRegistry()
		if err := tui.RegisterModes(registry, mgr, cfg); err != nil {
			return fmt.Errorf("failed to build mode registry: %w", err)
		}

		if len(args) == 0 {
			id, ok, err := mgr.Store().LoadActiveMode(mgr.WorkspaceID())
			if err != nil {
				return fmt.Errorf("failed to read workspace state: %w", err)
			}
			if !ok {
				id = cfg.DefaultMode()
			}
			if _, registered := registry.Resolve(id); !registered {
				id = mode.DefaultID
			}
			fmt.Println(id)
			return nil
		}

		target := mode.ID(args[0])
		if _, registered := registry.Resolve(target); !registered {
			return fmt.Errorf("unknown mode %q (valid: %s)",
				args[0], strings.Join(idStrings(registry.OrderedIDs()), ", "))
		}

		if err := mgr.Store().SaveActiveMode(mgr.WorkspaceID(), target); err != nil {
			return fmt.Errorf("failed to record mode: %w", err)
		}

		fmt.Printf("workspace %s will open in %s mode\n", mgr.WorkspaceID(), target)
		return nil
	},
}

// modeNames lists the built-in mode ids for the usage line, where no
// workspace exists yet to build a registry from.
func modeNames() []string {
	return []string{string(mode.Editor), string(mode.Terminal)}
}

func idStrings(ids []mode.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func init() {
	rootCmd.AddCommand(modeCmd)
}
