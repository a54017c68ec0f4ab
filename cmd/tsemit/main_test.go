package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/emitter"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/exitcode"
	"github.com/webcarrot/tsemit/internal/fs"
	"github.com/webcarrot/tsemit/internal/logger"
	"github.com/webcarrot/tsemit/internal/test"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--color", "never"))
	err := root.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestPrintCommand(t *testing.T) {
	t.Run("source file", func(t *testing.T) {
		path := writeTemp(t, "a.ts.yaml", "- {kind: ExpressionStatement, expression: a}\n")
		out, err := runCommand(t, "print", path)
		require.NoError(t, err)
		test.AssertEqualWithDiff(t, out, "a;\n")
	})

	t.Run("expression", func(t *testing.T) {
		path := writeTemp(t, "expr.yaml", "kind: BinaryExpression\nleft: a\noperatorToken: \"+\"\nright: 1\n")
		out, err := runCommand(t, "print", path, "--hint", "expression")
		require.NoError(t, err)
		test.AssertEqualWithDiff(t, out, "a + 1\n")
	})

	t.Run("bad hint", func(t *testing.T) {
		path := writeTemp(t, "expr.yaml", "a\n")
		_, err := runCommand(t, "print", path, "--hint", "statement-ish")
		require.Error(t, err)
		assert.Equal(t, exitcode.InvalidArguments, exitcode.Get(err))
	})

	t.Run("bad document", func(t *testing.T) {
		path := writeTemp(t, "a.ts.yaml", "- {kind: ExpressionStatement}\n- expression: a\n")
		_, err := runCommand(t, "print", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing "kind"`)
	})
}

func TestConfigCommand(t *testing.T) {
	out, err := runCommand(t, "config", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, `module = "commonjs"`)

	path := writeTemp(t, "tsemit.toml", "source_map = true\ninline_source_map = true\n")
	_, err = runCommand(t, "config", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidOption))
	assert.Equal(t, exitcode.InvalidArguments, exitcode.Get(err))
}

func TestEmitCommand(t *testing.T) {
	dir := t.TempDir()
	document := filepath.Join(dir, "src", "a.ts.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(document), 0755))
	require.NoError(t, os.WriteFile(document, []byte("- {kind: ExpressionStatement, expression: a}\n"), 0644))
	configPath := filepath.Join(dir, "tsemit.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("out_dir = \""+filepath.ToSlash(filepath.Join(dir, "out"))+"\"\n"), 0644))

	_, err := runCommand(t, "emit", "--config", configPath, document)
	require.NoError(t, err)
	contents, err := os.ReadFile(filepath.Join(dir, "out", "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "a;\n", string(contents))
}

func TestEmitDocuments(t *testing.T) {
	const statement = "- {kind: ExpressionStatement, expression: a}\n"

	t.Run("listed files", func(t *testing.T) {
		mock := fs.NewMockFS(map[string]string{"/src/a.ts.yaml": statement}, "/")
		options := config.Default()
		options.OutDir = "/out"
		options.ListEmittedFiles = true

		var stdout, stderr bytes.Buffer
		err := emitDocuments(&stdout, &stderr, mock, []string{"/src/a.ts.yaml"}, options, logger.TerminalInfo{})
		require.NoError(t, err)
		assert.Equal(t, "TSFILE: /out/a.js\n", stdout.String())
		assert.Empty(t, stderr.String())

		contents, err := mock.ReadFile("/out/a.js")
		require.NoError(t, err)
		assert.Equal(t, "a;\n", contents)
	})

	t.Run("blocked", func(t *testing.T) {
		mock := fs.NewMockFS(map[string]string{"/src/a.js.yaml": statement}, "/")

		var stdout, stderr bytes.Buffer
		err := emitDocuments(&stdout, &stderr, mock, []string{"/src/a.js.yaml"}, config.Default(), logger.TerminalInfo{})
		require.Error(t, err)
		assert.Equal(t, exitcode.OutputsSkipped, exitcode.Get(err))
		assert.True(t, errors.Is(err, emitter.ErrEmitBlocked))
		assert.Contains(t, stderr.String(), `Cannot write file "/src/a.js"`)
		assert.Contains(t, stderr.String(), "1 error")
	})

	t.Run("missing document", func(t *testing.T) {
		mock := fs.NewMockFS(nil, "/")
		var stdout, stderr bytes.Buffer
		err := emitDocuments(&stdout, &stderr, mock, []string{"/src/missing.yaml"}, config.Default(), logger.TerminalInfo{})
		require.Error(t, err)
		assert.Equal(t, exitcode.InvalidArguments, exitcode.Get(err))
	})
}

func TestWatchDocuments(t *testing.T) {
	document := writeTemp(t, "a.ts.yaml", "[]\n")
	other := filepath.Join(filepath.Dir(document), "b.ts.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	rebuilt := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchDocuments(ctx, fs.RealFS(), []string{document}, func() { rebuilt <- struct{}{} })
	}()

	// The watcher may not be ready yet, so keep touching the file
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
wait:
	for {
		select {
		case <-rebuilt:
			break wait
		case <-ticker.C:
			require.NoError(t, os.WriteFile(other, []byte("[]\n"), 0644))
			require.NoError(t, os.WriteFile(document, []byte("[]\n"), 0644))
		case <-deadline:
			t.Fatal("no rebuild after the document changed")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestSourceFileName(t *testing.T) {
	for document, expected := range map[string]string{
		"a.ts.yaml":      "a.ts",
		"a.tsx.yml":      "a.tsx",
		"a.js.ast.json":  "a.js",
		"a.yaml":         "a.ts",
		"dir/b.d.ts.yml": "dir/b.d.ts",
		"c":              "c.ts",
	} {
		assert.Equal(t, expected, sourceFileName(document), document)
	}
}
