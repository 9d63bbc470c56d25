package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glasshq/glass/internal/workspace"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open or display the config file",
	Long:  "Open .glass/config.toml in $EDITOR, or display its path with --path",
	RunE: func(cmd *cobra.Command, args []string) error {
		showPath, _ := cmd.Flags().GetBool("path")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		root, ok := workspace.FindProjectRoot(cwd)
		if !ok {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return fmt.Errorf("failed to resolve home directory: %w", herr)
			}
			root = home
		}

		configPath := filepath.Join(root, ".glass", "config.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("no config file at %s; run 'glass init' first", configPath)
		}

		if showPath {
			fmt.Println(configPath)
			return nil
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			content, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			fmt.Print(string(content))
			return nil
		}

		editorCmd := exec.Command(editor, configPath)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr

		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("failed to open editor: %w", err)
		}

		return nil
	},
}

func init() {
	configCmd.Flags().Bool("path", false, "Print config file path instead of opening")
	rootCmd.AddCommand(configCmd)
}
