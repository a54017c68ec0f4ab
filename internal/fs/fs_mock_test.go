package fs

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/errors"
)

func TestMockFSBasic(t *testing.T) {
	fs := NewMockFS(map[string]string{
		"/src/index.yaml": "kind: SourceFile",
	}, "/src")

	_, err := fs.ReadFile("/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.ENOENT))

	contents, err := fs.ReadFile("/src/index.yaml")
	require.NoError(t, err)
	assert.Equal(t, "kind: SourceFile", contents)

	require.NoError(t, fs.WriteFile("/out/index.js", "a;\n"))
	assert.Equal(t, []string{"/out/index.js", "/src/index.yaml"}, fs.Files())

	assert.True(t, fs.SameFile("/src/index.yaml", "/src/index.yaml"))
	assert.False(t, fs.SameFile("/src/index.yaml", "/out/index.js"))
	assert.False(t, fs.SameFile("/missing", "/missing"))
}

func TestMockFSPaths(t *testing.T) {
	fs := NewMockFS(nil, "/project")

	abs, ok := fs.Abs("src/a.ts")
	require.True(t, ok)
	assert.Equal(t, "/project/src/a.ts", abs)

	for _, c := range []struct{ base, target, expected string }{
		{"/a/b", "/a/b", "."},
		{"/a", "/a/b/c.ts", "b/c.ts"},
		{"/a/b", "/a/c", "../c"},
		{"/a/b/c", "/a", "../.."},
		{"/a/b/c", "/x/y", "../../../x/y"},
	} {
		rel, ok := fs.Rel(c.base, c.target)
		require.True(t, ok)
		assert.Equal(t, c.expected, rel, "Rel(%q, %q)", c.base, c.target)
	}
}

func TestWithoutExt(t *testing.T) {
	fs := NewMockFS(nil, "/")
	assert.Equal(t, "/a/b", WithoutExt(fs, "/a/b.ts"))
	assert.Equal(t, "/a/b", WithoutExt(fs, "/a/b.d.ts"))
	assert.Equal(t, "/a/b", WithoutExt(fs, "/a/b"))
}

func TestCommonDir(t *testing.T) {
	fs := NewMockFS(nil, "/cwd")
	assert.Equal(t, "/cwd", CommonDir(fs, nil))
	assert.Equal(t, "/src", CommonDir(fs, []string{"/src/a.ts"}))
	assert.Equal(t, "/src", CommonDir(fs, []string{"/src/a.ts", "/src/lib/b.ts"}))
	assert.Equal(t, "/src", CommonDir(fs, []string{"/src/lib/b.ts", "/src/a.ts"}))
	assert.Equal(t, "/", CommonDir(fs, []string{"/src/a.ts", "/test/b.ts"}))
}
