package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasshq/glass/internal/mode"
)

func TestNewStore(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	assert.NotNil(t, store)
	assert.Equal(t, tmpDir, store.dir)
}

func TestSaveAndLoadActiveMode(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	err := store.SaveActiveMode("ws-1", mode.Terminal)
	require.NoError(t, err)

	id, ok, err := store.LoadActiveMode("ws-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, mode.Terminal, id)
}

func TestLoadActiveModeMissingRow(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	_, ok, err := store.LoadActiveMode("never-saved")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadActiveModeBlankValue(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	state := &State{Workspaces: map[string]WorkspaceRecord{
		"ws-1": {ActiveMode: ""},
	}}
	require.NoError(t, store.Save(state))

	_, ok, err := store.LoadActiveMode("ws-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadActiveModePreservesUnrecognizedValue(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	// A mode written by a newer version stays readable; recognizing it
	// is the controller's job.
	require.NoError(t, store.SaveActiveMode("ws-1", "browser"))

	id, ok, err := store.LoadActiveMode("ws-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, mode.ID("browser"), id)
}

func TestSaveActiveModeKeepsOtherWorkspaces(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	require.NoError(t, store.SaveActiveMode("ws-1", mode.Editor))
	require.NoError(t, store.SaveActiveMode("ws-2", mode.Terminal))

	id, ok, err := store.LoadActiveMode("ws-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mode.Editor, id)

	id, ok, err = store.LoadActiveMode("ws-2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mode.Terminal, id)
}

func TestSaveOverwritesPreviousMode(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	require.NoError(t, store.SaveActiveMode("ws-1", mode.Editor))
	require.NoError(t, store.SaveActiveMode("ws-1", mode.Terminal))

	id, ok, err := store.LoadActiveMode("ws-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mode.Terminal, id)
}

func TestLoadNonexistentState(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	state, err := store.Load()
	require.NoError(t, err)

	assert.NotNil(t, state)
	assert.NotNil(t, state.Workspaces)
	assert.Equal(t, 0, len(state.Workspaces))
}

func TestLoadCorruptStateFails(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	glassDir := filepath.Join(tmpDir, ".glass")
	require.NoError(t, os.MkdirAll(glassDir, 0755))
	require.NoError(t, os.WriteFile(store.statePath(), []byte("{not json"), 0644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(tmpDir)

	require.NoError(t, store.SaveActiveMode("ws-1", mode.Editor))

	tmpPath := filepath.Join(tmpDir, ".glass", "workspaces.json.tmp")
	_, err := os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(err), "Temp file should be removed after save")
}

func TestStatePathsCorrect(t *testing.T) {
	tmpDir := "/test/dir"
	store := NewStore(tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, ".glass", "workspaces.json"), store.statePath())
	assert.Equal(t, filepath.Join(tmpDir, ".glass", "workspaces.json.lock"), store.lockPath())
}

func TestGenerateID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)

		assert.Equal(t, 6, len(id))
		assert.False(t, ids[id], "Generated duplicate ID: %s", id)
		ids[id] = true

		for _, c := range id {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'),
				"ID contains non-hex character: %c", c)
		}
	}
}
