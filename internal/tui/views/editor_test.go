package views

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasshq/glass/internal/logger"
	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
)

func newTestEditor(t *testing.T, showDock bool) (*Editor, *session.Owner) {
	t.Helper()
	owner := session.NewOwner(newFakeBackend(), "glass-test", "", logger.Discard())
	return NewEditor(owner, homeDir(t.TempDir()), showDock, true), owner
}

func TestEditorOpenPath(t *testing.T) {
	e, _ := newTestEditor(t, true)

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("hello glass\n"), 0o644))

	e.OpenPath(path)

	assert.Equal(t, path, e.FilePath())
	assert.Contains(t, e.buffer.Value(), "hello glass")
}

func TestEditorOpenPathReloads(t *testing.T) {
	e, _ := newTestEditor(t, true)

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	e.OpenPath(path)

	// Re-opening the same path picks up the file's current content.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	e.OpenPath(path)

	assert.Equal(t, "v2", e.buffer.Value())
}

func TestEditorOpenPathMissingFile(t *testing.T) {
	e, _ := newTestEditor(t, true)

	e.OpenPath(filepath.Join(t.TempDir(), "missing.go"))

	assert.Empty(t, e.FilePath())
	assert.NotEmpty(t, e.status)
}

func TestEditorToggleDock(t *testing.T) {
	e, _ := newTestEditor(t, true)

	assert.True(t, e.DockVisible())
	e.ToggleDock()
	assert.False(t, e.DockVisible())
	e.ToggleDock()
	assert.True(t, e.DockVisible())
}

func TestEditorDockRendersOwnerSessions(t *testing.T) {
	e, owner := newTestEditor(t, true)
	e.SetSize(80, 24)

	id, err := owner.Create("/work/project")
	require.NoError(t, err)

	// The dock resolves session ids against the owner at render time;
	// a session created elsewhere shows up without any sync step.
	out := e.View()
	assert.Contains(t, out, shortID(id))

	require.NoError(t, owner.Close(id))
	out = e.View()
	assert.NotContains(t, out, shortID(id))
}

func TestEditorActivateFocusesBuffer(t *testing.T) {
	e, _ := newTestEditor(t, true)

	require.NoError(t, e.Activate(mode.Transition{From: mode.Terminal, To: mode.Editor}))
	assert.True(t, e.buffer.Focused())

	require.NoError(t, e.Deactivate(mode.Transition{From: mode.Editor, To: mode.Terminal}))
	assert.False(t, e.buffer.Focused())
}

func TestEditorDockElapsedTimeToggle(t *testing.T) {
	owner := session.NewOwner(newFakeBackend(), "glass-test", "", logger.Discard())
	_, err := owner.Create("/work/project")
	require.NoError(t, err)

	withAge := NewEditor(owner, homeDir(t.TempDir()), true, true)
	withAge.SetSize(80, 24)
	assert.Contains(t, withAge.View(), "ago")

	withoutAge := NewEditor(owner, homeDir(t.TempDir()), true, false)
	withoutAge.SetSize(80, 24)
	assert.NotContains(t, withoutAge.View(), "ago")
}

func TestElapsed(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "5m0s", elapsed(now.Add(-5*time.Minute)))
	assert.Equal(t, "2h0m0s", elapsed(now.Add(-2*time.Hour)))
}
