// Command autodoc-ast parses TypeScript source into a JSON AST envelope.
//
// Usage:
//
//	autodoc-ast file.ts
//	cat file.ts | autodoc-ast
//
// The envelope is written to stdout in both the success and failure cases;
// a failed parse additionally exits non-zero.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/typescript"
)

// defaultParserCommand is the external parser invoked unless AUTODOC_TS_PARSER
// points elsewhere.
const defaultParserCommand = "parse-typescript"

// ErrParseFailed is returned when the source could not be parsed. The
// envelope has already been written when this is returned.
var ErrParseFailed = errors.New("parse failed")

// App encapsulates the application logic for testing.
type App struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Parser autodoc.ASTParser
}

// Run parses the file argument, or stdin when no argument is given, and
// writes the JSON envelope to stdout.
func (a *App) Run(ctx context.Context) error {
	var result *autodoc.ParseResult
	var err error

	if len(a.Args) > 0 {
		result, err = a.Parser.ParseFile(ctx, a.Args[0])
	} else {
		var source []byte
		source, err = io.ReadAll(a.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		result, err = a.Parser.Parse(ctx, string(source))
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.Stdout)
	if err := enc.Encode(result); err != nil {
		return err
	}

	if !result.Success {
		return ErrParseFailed
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	command := os.Getenv("AUTODOC_TS_PARSER")
	if command == "" {
		command = defaultParserCommand
	}

	parser, err := typescript.NewParser(command)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := &App{
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Parser: parser,
	}

	if err := app.Run(ctx); err != nil {
		if !errors.Is(err, ErrParseFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
