package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFSWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	fs := RealFS()

	path := filepath.Join(dir, "nested", "out.js")
	require.NoError(t, fs.WriteFile(path, "a;\n"))

	contents, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a;\n", contents)

	_, err = fs.ReadFile(filepath.Join(dir, "missing.js"))
	require.Error(t, err)
}

func TestRealFSSameFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("links need extra privileges on Windows")
	}
	dir := t.TempDir()
	fs := RealFS()

	input := filepath.Join(dir, "input.json")
	other := filepath.Join(dir, "other.json")
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0644))
	require.NoError(t, os.Symlink(input, link))

	assert.True(t, fs.SameFile(input, input))
	assert.True(t, fs.SameFile(input, link))
	assert.False(t, fs.SameFile(input, other))
	assert.False(t, fs.SameFile(input, filepath.Join(dir, "missing.json")))
}
