package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	assert.NotNil(t, client)
}

func TestSessionLifecycle(t *testing.T) {
	client := NewClient()
	if !client.IsInstalled() {
		t.Skip("tmux is not installed")
	}

	name := "glass-test-lifecycle"

	// Clean up any leftover from a previous run
	if client.HasSession(name) {
		require.NoError(t, client.KillSession(name))
	}

	require.NoError(t, client.NewSession(name, t.TempDir()))
	defer client.KillSession(name)

	assert.True(t, client.HasSession(name))

	sessions, err := client.ListSessions()
	require.NoError(t, err)
	assert.Contains(t, sessions, name)

	require.NoError(t, client.KillSession(name))
	assert.False(t, client.HasSession(name))
}

func TestAttachCommand(t *testing.T) {
	cmd := NewClient().AttachCommand("glass-ws-abc123")

	assert.Equal(t, []string{"tmux", "attach-session", "-t", "glass-ws-abc123"}, cmd.Args)
}

func TestSendKeys(t *testing.T) {
	client := NewClient()
	if !client.IsInstalled() {
		t.Skip("tmux is not installed")
	}

	name := "glass-test-sendkeys"
	if client.HasSession(name) {
		require.NoError(t, client.KillSession(name))
	}

	require.NoError(t, client.NewSession(name, t.TempDir()))
	defer client.KillSession(name)

	require.NoError(t, client.SendKeys(name, "true"))
}

func TestHasSessionMissing(t *testing.T) {
	client := NewClient()
	if !client.IsInstalled() {
		t.Skip("tmux is not installed")
	}

	assert.False(t, client.HasSession("glass-test-does-not-exist"))
}

func TestVersion(t *testing.T) {
	client := NewClient()
	if !client.IsInstalled() {
		t.Skip("tmux is not installed")
	}

	version, err := client.Version()
	require.NoError(t, err)
	assert.Contains(t, version, "tmux")
}
