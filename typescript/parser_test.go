package typescript_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/noahmasoud/autodoc/typescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParser writes an executable shell script that stands in for the real
// parser command and returns its path.
func fakeParser(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "parse-typescript")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755)
	require.NoError(t, err)
	return path
}

func TestNewParser_RequiresCommand(t *testing.T) {
	t.Parallel()

	_, err := typescript.NewParser("")
	assert.Error(t, err)
}

func TestParser_ParseFile(t *testing.T) {
	t.Parallel()

	t.Run("successful parse returns AST", func(t *testing.T) {
		t.Parallel()

		cmd := fakeParser(t, `echo '{"success":true,"ast":{"kind":"SourceFile","children":[]}}'`)
		p, err := typescript.NewParser(cmd)
		require.NoError(t, err)

		result, err := p.ParseFile(context.Background(), "example.ts")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.JSONEq(t, `{"kind":"SourceFile","children":[]}`, string(result.AST))
		assert.Nil(t, result.Error)
	})

	t.Run("parse failure returns issue, not error", func(t *testing.T) {
		t.Parallel()

		cmd := fakeParser(t, `echo '{"success":false,"error":{"type":"SyntaxError","message":"unexpected token","line":3,"column":7}}'
exit 1`)
		p, err := typescript.NewParser(cmd)
		require.NoError(t, err)

		result, err := p.ParseFile(context.Background(), "broken.ts")

		require.NoError(t, err)
		assert.False(t, result.Success)
		require.NotNil(t, result.Error)
		assert.Equal(t, "SyntaxError", result.Error.Type)
		assert.Equal(t, "unexpected token", result.Error.Message)
		assert.Equal(t, 3, result.Error.Line)
		assert.Equal(t, 7, result.Error.Column)
	})

	t.Run("command failure without envelope surfaces stderr", func(t *testing.T) {
		t.Parallel()

		cmd := fakeParser(t, `echo "node: not found" >&2
exit 127`)
		p, err := typescript.NewParser(cmd)
		require.NoError(t, err)

		_, err = p.ParseFile(context.Background(), "example.ts")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "node: not found")
	})

	t.Run("invalid output is an error", func(t *testing.T) {
		t.Parallel()

		cmd := fakeParser(t, `echo 'not json'`)
		p, err := typescript.NewParser(cmd)
		require.NoError(t, err)

		_, err = p.ParseFile(context.Background(), "example.ts")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output")
	})

	t.Run("missing command is an error", func(t *testing.T) {
		t.Parallel()

		p, err := typescript.NewParser(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)

		_, err = p.ParseFile(context.Background(), "example.ts")
		assert.Error(t, err)
	})
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("passes source on stdin", func(t *testing.T) {
		t.Parallel()

		// Echoes the input length back inside the AST so the test can verify
		// stdin plumbing.
		cmd := fakeParser(t, `len=$(wc -c)
echo "{\"success\":true,\"ast\":{\"bytes\":$len}}"`)
		p, err := typescript.NewParser(cmd)
		require.NoError(t, err)

		result, err := p.Parse(context.Background(), "const x = 1;")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, string(result.AST), "12")
	})
}
