package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client provides a stateless abstraction over tmux CLI commands. Glass
// backs every terminal session with a detached tmux session, so session
// processes outlive whichever presentation currently displays them.
type Client struct{}

// NewClient creates a new tmux command runner.
func NewClient() *Client {
	return &Client{}
}

// IsInstalled checks if tmux is available on the system.
func (c *Client) IsInstalled() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Version returns the tmux version string.
func (c *Client) Version() (string, error) {
	output, err := c.run("-V")
	if err != nil {
		return "", fmt.Errorf("failed to get tmux version: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// run executes a tmux command and captures its output.
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("tmux command failed: %s", strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("tmux command failed: %w", err)
	}

	return stdout.String(), nil
}

// runAttached executes a tmux command with stdin/stdout/stderr attached
// to the current terminal. Used for interactive commands like
// attach-session.
func (c *Client) runAttached(args ...string) error {
	cmd := exec.Command("tmux", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux command failed: %w", err)
	}

	return nil
}
