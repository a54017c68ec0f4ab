package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsemit.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	options, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), options)
	require.Equal(t, "\n", options.NewLineString())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
target = "ES2015"
module = "amd"
new_line = "crlf"
indent_size = 2
out_file = "out/bundle.js"
source_map = true
remove_comments = true
`)
	options, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ES2015, options.Target)
	require.Equal(t, ModuleAMD, options.Module)
	require.Equal(t, 2, options.IndentSize)
	require.Equal(t, "out/bundle.js", options.OutFile)
	require.True(t, options.SourceMap)
	require.True(t, options.RemoveComments)
	require.Equal(t, "\r\n", options.NewLineString())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TSEMIT_REMOVE_COMMENTS", "true")
	t.Setenv("TSEMIT_TARGET", "esnext")
	options, err := Load("")
	require.NoError(t, err)
	require.True(t, options.RemoveComments)
	require.Equal(t, ESNext, options.Target)
}

func TestLoadUnknownEnum(t *testing.T) {
	path := writeConfig(t, `module = "bogus"`)
	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidOption))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "reading config file")
}

func TestValidate(t *testing.T) {
	check := func(mutate func(o *Options), expected string) {
		t.Helper()
		options := Default()
		mutate(&options)
		err := options.Validate()
		if expected == "" {
			require.NoError(t, err)
			return
		}
		require.ErrorContains(t, err, expected)
		require.True(t, errors.Is(err, ErrInvalidOption))
	}

	check(func(o *Options) {}, "")
	check(func(o *Options) { o.SourceMap, o.InlineSourceMap = true, true }, "cannot be used together")
	check(func(o *Options) { o.InlineSources = true }, "requires \"source_map\"")
	check(func(o *Options) { o.OutFile = "a.js" }, "cannot be used with module kind \"commonjs\"")
	check(func(o *Options) { o.OutFile, o.Module = "a.js", ModuleSystem }, "")
	check(func(o *Options) { o.DeclarationMap = true }, "requires \"declaration\"")
	check(func(o *Options) { o.References = true }, "requires \"out_file\"")
}

func TestEncodeRoundTrip(t *testing.T) {
	options := Default()
	options.Module = ModuleSystem
	options.OutFile = "bundle.js"
	options.SourceMap = true

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, options))
	require.Contains(t, buf.String(), `module = "system"`)
	require.Contains(t, buf.String(), `target = "es5"`)

	loaded, err := Load(writeConfig(t, buf.String()))
	require.NoError(t, err)
	require.Equal(t, options, loaded)
}

func TestKnownGlobals(t *testing.T) {
	require.True(t, IsKnownGlobal("Object"))
	require.True(t, IsKnownGlobal("require"))
	require.False(t, IsKnownGlobal("_a"))
}
