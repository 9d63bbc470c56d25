package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)

	// Mode defaults
	assert.Equal(t, "editor", cfg.Mode.Default)
	assert.Equal(t, "eager", cfg.Mode.TerminalActivation)

	// Terminal defaults
	assert.Equal(t, "glass", cfg.Terminal.SessionPrefix)
	assert.Equal(t, "", cfg.Terminal.Shell)

	// UI defaults
	assert.Equal(t, true, cfg.UI.ShowDockPanel)
	assert.Equal(t, true, cfg.UI.ShowElapsedTime)
}

func TestDefaultMode(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, mode.Editor, cfg.DefaultMode())

	cfg.Mode.Default = "terminal"
	assert.Equal(t, mode.Terminal, cfg.DefaultMode())

	cfg.Mode.Default = ""
	assert.Equal(t, mode.DefaultID, cfg.DefaultMode())
}

func TestActivationPolicy(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  session.Policy
	}{
		{name: "eager", value: "eager", want: session.PolicyEager},
		{name: "lazy", value: "lazy", want: session.PolicyLazy},
		{name: "unrecognized falls back to eager", value: "whenever", want: session.PolicyEager},
		{name: "empty falls back to eager", value: "", want: session.PolicyEager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode.TerminalActivation = tt.value
			assert.Equal(t, tt.want, cfg.ActivationPolicy())
		})
	}
}

func TestLoadConfigNonexistent(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.NotNil(t, cfg)
	assert.Equal(t, "editor", cfg.Mode.Default)
	assert.Equal(t, "glass", cfg.Terminal.SessionPrefix)
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Mode.Default = "terminal"
	cfg.Mode.TerminalActivation = "lazy"
	cfg.Terminal.SessionPrefix = "test-glass"
	cfg.UI.ShowDockPanel = false

	err := SaveConfig(tmpDir, cfg)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".glass", "config.toml")
	_, err = os.Stat(configPath)
	assert.NoError(t, err)

	loaded, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, cfg.Mode.Default, loaded.Mode.Default)
	assert.Equal(t, cfg.Mode.TerminalActivation, loaded.Mode.TerminalActivation)
	assert.Equal(t, cfg.Terminal.SessionPrefix, loaded.Terminal.SessionPrefix)
	assert.Equal(t, cfg.UI.ShowDockPanel, loaded.UI.ShowDockPanel)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	tmpDir := t.TempDir()

	glassDir := filepath.Join(tmpDir, ".glass")
	require.NoError(t, os.MkdirAll(glassDir, 0755))

	// Only override one field; the rest come from defaults.
	partial := `[mode]
terminal_activation = "lazy"
`
	require.NoError(t, os.WriteFile(filepath.Join(glassDir, "config.toml"), []byte(partial), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "lazy", cfg.Mode.TerminalActivation)
	assert.Equal(t, "editor", cfg.Mode.Default)
	assert.Equal(t, "glass", cfg.Terminal.SessionPrefix)
}

func TestInitWorkspace(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, InitWorkspace(tmpDir))

	_, err := os.Stat(filepath.Join(tmpDir, ".glass", "config.toml"))
	assert.NoError(t, err)
}
