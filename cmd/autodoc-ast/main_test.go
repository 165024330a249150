package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/noahmasoud/autodoc"
	main "github.com/noahmasoud/autodoc/cmd/autodoc-ast"
	"github.com/noahmasoud/autodoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_FileArgument(t *testing.T) {
	t.Parallel()

	var parsedPath string
	var out bytes.Buffer

	app := &main.App{
		Args:   []string{"src/widget.ts"},
		Stdout: &out,
		Parser: &mock.ASTParser{
			ParseFileFn: func(ctx context.Context, path string) (*autodoc.ParseResult, error) {
				parsedPath = path
				return &autodoc.ParseResult{
					Success: true,
					AST:     json.RawMessage(`{"kind":"SourceFile"}`),
				}, nil
			},
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "src/widget.ts", parsedPath)
	assert.Contains(t, out.String(), `"success":true`)
	assert.Contains(t, out.String(), `"SourceFile"`)
}

func TestApp_Run_Stdin(t *testing.T) {
	t.Parallel()

	var parsedSource string
	var out bytes.Buffer

	app := &main.App{
		Stdin:  strings.NewReader("const x = 1;"),
		Stdout: &out,
		Parser: &mock.ASTParser{
			ParseFn: func(ctx context.Context, source string) (*autodoc.ParseResult, error) {
				parsedSource = source
				return &autodoc.ParseResult{
					Success: true,
					AST:     json.RawMessage(`{}`),
				}, nil
			},
		},
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", parsedSource)
}

func TestApp_Run_ParseFailureWritesEnvelopeAndErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	app := &main.App{
		Args:   []string{"broken.ts"},
		Stdout: &out,
		Parser: &mock.ASTParser{
			ParseFileFn: func(ctx context.Context, path string) (*autodoc.ParseResult, error) {
				return &autodoc.ParseResult{
					Success: false,
					Error: &autodoc.ParseIssue{
						Type:    "SyntaxError",
						Message: "unexpected token",
						Line:    3,
						Column:  7,
					},
				}, nil
			},
		},
	}

	err := app.Run(context.Background())

	require.ErrorIs(t, err, main.ErrParseFailed)
	assert.Contains(t, out.String(), `"success":false`)
	assert.Contains(t, out.String(), `"SyntaxError"`)
}

func TestApp_Run_BridgeError(t *testing.T) {
	t.Parallel()

	bridgeErr := errors.New("parser command not found")

	app := &main.App{
		Args:   []string{"widget.ts"},
		Stdout: &bytes.Buffer{},
		Parser: &mock.ASTParser{
			ParseFileFn: func(ctx context.Context, path string) (*autodoc.ParseResult, error) {
				return nil, bridgeErr
			},
		},
	}

	err := app.Run(context.Background())
	assert.Equal(t, bridgeErr, err)
}
