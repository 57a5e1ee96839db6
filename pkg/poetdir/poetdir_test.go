package poetdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_PathAccessors(t *testing.T) {
	d := New("/project")

	assert.Equal(t, "/project", d.Root())
	assert.Equal(t, "/project/config.default.json", d.DefaultTemplatePath())
	assert.Equal(t, "/project/output", d.OutputDir())
	assert.Equal(t, "/project/output/configs", d.ConfigsDir())
	assert.Equal(t, "/project/output/configs/config_20251115_120000.json", d.ConfigPath("20251115_120000"))
	assert.Equal(t, "/project/output/configs/generate_config_20251115_120000.go", d.ScriptPath("20251115_120000"))
	assert.Equal(t, "/project/.sportpoet", d.LocalDir())
	assert.Equal(t, "/project/.sportpoet/keys.local.md", d.LocalKeysPath())
	assert.Equal(t, "/project/.sportpoet/.gitignore", d.GitignorePath())
}

func TestDir_Exists(t *testing.T) {
	tmp := t.TempDir()

	d := New(filepath.Join(tmp, "missing"))
	assert.False(t, d.Exists())

	d = New(tmp)
	assert.True(t, d.Exists())
}

func TestEnsureStructure(t *testing.T) {
	tmp := t.TempDir()
	d := New(tmp)

	require.NoError(t, EnsureStructure(d))

	info, err := os.Stat(d.ConfigsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "*\n", string(data))

	// Idempotent.
	require.NoError(t, EnsureStructure(d))
}

func TestEnsureStructure_DoesNotOverwriteGitignore(t *testing.T) {
	tmp := t.TempDir()
	d := New(tmp)

	require.NoError(t, os.MkdirAll(d.LocalDir(), 0o750))
	require.NoError(t, os.WriteFile(d.GitignorePath(), []byte("custom\n"), 0o600))

	require.NoError(t, EnsureStructure(d))

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}
