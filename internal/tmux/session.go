package tmux

import (
	"fmt"
	"os/exec"
	"strings"
)

// NewSession creates a new detached tmux session rooted at dir. If dir
// is empty, the session starts in the current working directory.
func (c *Client) NewSession(name, dir string) error {
	args := []string{"new-session", "-d", "-s", name}
	if dir != "" {
		args = append(args, "-c", dir)
	}

	if _, err := c.run(args...); err != nil {
		return fmt.Errorf("failed to create session %q: %w", name, err)
	}

	return nil
}

// HasSession checks if a tmux session with the given name exists.
func (c *Client) HasSession(name string) bool {
	_, err := c.run("has-session", "-t", name)
	return err == nil
}

// KillSession terminates a tmux session and its shell process.
func (c *Client) KillSession(name string) error {
	if _, err := c.run("kill-session", "-t", name); err != nil {
		return fmt.Errorf("failed to kill session %q: %w", name, err)
	}
	return nil
}

// ListSessions returns the names of all active tmux sessions.
func (c *Client) ListSessions() ([]string, error) {
	output, err := c.run("list-sessions", "-F", "#{session_name}")
	if err != nil {
		// tmux reports an error when no server is running at all
		if strings.Contains(err.Error(), "no server running") ||
			strings.Contains(err.Error(), "failed to connect") {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{}, nil
	}

	return lines, nil
}

// AttachCommand builds the command that attaches the current terminal
// to a session. The TUI hands it to tea.ExecProcess so the program
// suspends for the duration of the attachment.
func (c *Client) AttachCommand(name string) *exec.Cmd {
	return exec.Command("tmux", "attach-session", "-t", name)
}

// AttachSession attaches to an existing tmux session, taking over the
// terminal. Blocks until the user detaches.
func (c *Client) AttachSession(name string) error {
	if err := c.runAttached("attach-session", "-t", name); err != nil {
		return fmt.Errorf("failed to attach to session %q: %w", name, err)
	}
	return nil
}

// SendKeys sends a command line to a session's active pane.
func (c *Client) SendKeys(target, keys string) error {
	if _, err := c.run("send-keys", "-t", target, keys, "Enter"); err != nil {
		return fmt.Errorf("failed to send keys to %q: %w", target, err)
	}
	return nil
}

// CapturePaneContent captures the visible content of a session's active
// pane. Used by the terminal presentations to preview session output.
func (c *Client) CapturePaneContent(target string) (string, error) {
	output, err := c.run("capture-pane", "-t", target, "-p")
	if err != nil {
		return "", fmt.Errorf("failed to capture pane %q: %w", target, err)
	}
	return output, nil
}
