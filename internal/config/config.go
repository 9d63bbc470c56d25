package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
)

// Config represents the complete Glass configuration
type Config struct {
	Mode     ModeConfig     `toml:"mode"`
	Terminal TerminalConfig `toml:"terminal"`
	UI       UIConfig       `toml:"ui"`
}

// ModeConfig contains workspace-mode settings
type ModeConfig struct {
	// Default is the mode a fresh workspace opens in.
	Default string `toml:"default"`
	// TerminalActivation selects the policy for entering terminal mode
	// with zero sessions: "eager" creates one, "lazy" waits for the
	// user to ask for one.
	TerminalActivation string `toml:"terminal_activation"`
}

// TerminalConfig contains terminal session settings
type TerminalConfig struct {
	SessionPrefix string `toml:"session_prefix"`
	Shell         string `toml:"shell"`
}

// UIConfig contains UI display settings
type UIConfig struct {
	ShowDockPanel   bool `toml:"show_dock_panel"`
	ShowElapsedTime bool `toml:"show_elapsed_time"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode: ModeConfig{
			Default:            string(mode.DefaultID),
			TerminalActivation: string(session.PolicyEager),
		},
		Terminal: TerminalConfig{
			SessionPrefix: "glass",
			Shell:         "",
		},
		UI: UIConfig{
			ShowDockPanel:   true,
			ShowElapsedTime: true,
		},
	}
}

// DefaultMode returns the configured default mode id, falling back to
// the built-in default when the configured value is not usable.
func (c *Config) DefaultMode() mode.ID {
	if c.Mode.Default == "" {
		return mode.DefaultID
	}
	return mode.ID(c.Mode.Default)
}

// ActivationPolicy returns the configured terminal activation policy,
// falling back to eager when the configured value is unrecognized.
func (c *Config) ActivationPolicy() session.Policy {
	p := session.Policy(c.Mode.TerminalActivation)
	if !p.Valid() {
		return session.PolicyEager
	}
	return p
}

// LoadConfig reads .glass/config.toml from the specified directory.
// Missing fields are filled with defaults from DefaultConfig().
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".glass", "config.toml")

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to .glass/config.toml in the specified
// directory
func SaveConfig(dir string, cfg *Config) error {
	glassDir := filepath.Join(dir, ".glass")
	if err := os.MkdirAll(glassDir, 0755); err != nil {
		return fmt.Errorf("failed to create .glass directory: %w", err)
	}

	f, err := os.Create(filepath.Join(glassDir, "config.toml"))
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// InitWorkspace creates the .glass directory with a default config.toml
// and an empty workspace table.
func InitWorkspace(root string) error {
	glassDir := filepath.Join(root, ".glass")

	if err := os.MkdirAll(glassDir, 0755); err != nil {
		return fmt.Errorf("failed to create .glass directory: %w", err)
	}

	if err := SaveConfig(root, DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save default config: %w", err)
	}

	return nil
}
