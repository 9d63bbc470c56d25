package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/glasshq/glass/internal/config"
	"github.com/glasshq/glass/internal/session"
	"github.com/glasshq/glass/internal/store"
	"github.com/glasshq/glass/internal/tmux"
)

// Manager wires one workspace together: its project root (if any), its
// configuration, the persistence store, and the session owner. The
// workspace, not any mode or view, owns the terminal sessions.
type Manager struct {
	root        string // project root; empty when no project is open
	dataDir     string // where .glass lives
	workspaceID string
	config      *config.Config
	store       *store.Store
	tmux        *tmux.Client
	sessions    *session.Owner
	logger      *log.Logger
}

// NewManager creates a workspace manager for the given working
// directory. When no project root is found the workspace runs
// projectless: state lives under the user's home directory and new
// sessions are rooted there.
func NewManager(cwd string, cfg *config.Config, logger *log.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	root, _ := FindProjectRoot(cwd)

	dataDir := root
	workspaceID := root
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = home
		workspaceID = "global"
	}

	tmuxClient := tmux.NewClient()

	prefix := fmt.Sprintf("%s-%s", cfg.Terminal.SessionPrefix, workspaceName(workspaceID))
	sessions := session.NewOwner(tmuxClient, prefix, cfg.Terminal.Shell, logger)

	return &Manager{
		root:        root,
		dataDir:     dataDir,
		workspaceID: workspaceID,
		config:      cfg,
		store:       store.NewStore(dataDir),
		tmux:        tmuxClient,
		sessions:    sessions,
		logger:      logger,
	}, nil
}

// ProjectOpen reports whether this workspace has a project root.
func (m *Manager) ProjectOpen() bool {
	return m.root != ""
}

// WorkingDir returns the directory new terminal sessions are rooted at:
// the project root when a project is open, the user's home directory
// otherwise.
func (m *Manager) WorkingDir() (string, error) {
	if m.root != "" {
		return m.root, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}

// Root returns the project root path, empty when no project is open.
func (m *Manager) Root() string {
	return m.root
}

// DataDir returns the directory holding this workspace's .glass state.
func (m *Manager) DataDir() string {
	return m.dataDir
}

// WorkspaceID returns the stable id this workspace persists under.
func (m *Manager) WorkspaceID() string {
	return m.workspaceID
}

// Config returns the configuration
func (m *Manager) Config() *config.Config {
	return m.config
}

// Store returns the underlying persistence store
func (m *Manager) Store() *store.Store {
	return m.store
}

// Sessions returns the session owner
func (m *Manager) Sessions() *session.Owner {
	return m.sessions
}

// Tmux returns the underlying tmux client
func (m *Manager) Tmux() *tmux.Client {
	return m.tmux
}

// Logger returns the workspace logger
func (m *Manager) Logger() *log.Logger {
	return m.logger
}

// FindProjectRoot walks up from dir looking for a .git directory.
// ok is false when the filesystem root is reached without finding one.
func FindProjectRoot(dir string) (root string, ok bool) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// workspaceName turns a workspace id into a name safe for tmux session
// prefixes.
func workspaceName(id string) string {
	name := filepath.Base(id)

	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, name)

	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "workspace"
	}

	return cleaned
}
