package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasshq/glass/internal/config"
	"github.com/glasshq/glass/internal/logger"
)

func gitProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	return dir
}

func TestFindProjectRoot(t *testing.T) {
	dir := gitProject(t)
	nested := filepath.Join(dir, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	root, ok := FindProjectRoot(nested)
	assert.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestFindProjectRootNotFound(t *testing.T) {
	dir := t.TempDir()

	_, ok := FindProjectRoot(dir)
	assert.False(t, ok)
}

func TestNewManagerWithProject(t *testing.T) {
	dir := gitProject(t)

	mgr, err := NewManager(dir, config.DefaultConfig(), logger.Discard())
	require.NoError(t, err)

	assert.True(t, mgr.ProjectOpen())
	assert.Equal(t, dir, mgr.Root())
	assert.Equal(t, dir, mgr.WorkspaceID())
	assert.Equal(t, dir, mgr.DataDir())

	wd, err := mgr.WorkingDir()
	require.NoError(t, err)
	assert.Equal(t, dir, wd)
}

func TestNewManagerWithoutProject(t *testing.T) {
	dir := t.TempDir()

	mgr, err := NewManager(dir, config.DefaultConfig(), logger.Discard())
	require.NoError(t, err)

	home, herr := os.UserHomeDir()
	require.NoError(t, herr)

	assert.False(t, mgr.ProjectOpen())
	assert.Equal(t, "", mgr.Root())
	assert.Equal(t, "global", mgr.WorkspaceID())
	assert.Equal(t, home, mgr.DataDir())

	// With no project open, new sessions are rooted at home.
	wd, err := mgr.WorkingDir()
	require.NoError(t, err)
	assert.Equal(t, home, wd)
}

func TestNewManagerNilConfig(t *testing.T) {
	_, err := NewManager(t.TempDir(), nil, logger.Discard())
	assert.Error(t, err)
}

func TestWorkspaceName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "plain path", id: "/home/user/projects/myrepo", want: "myrepo"},
		{name: "dots and spaces", id: "/tmp/my repo.v2", want: "my-repo-v2"},
		{name: "global workspace", id: "global", want: "global"},
		{name: "all symbols", id: "/tmp/!!!", want: "workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workspaceName(tt.id))
		})
	}
}
