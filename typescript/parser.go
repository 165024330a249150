// Package typescript bridges to an external TypeScript parser via shell commands.
package typescript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.ASTParser = (*Parser)(nil)

// Parser executes an external parser command and decodes its JSON envelope.
// The command receives a file path as its last argument, or source on stdin
// when no path is given.
type Parser struct {
	command string
	args    []string
}

// NewParser creates a Parser that shells out to the given command.
func NewParser(command string, args ...string) (*Parser, error) {
	if command == "" {
		return nil, errors.New("typescript: command is required")
	}
	return &Parser{command: command, args: args}, nil
}

// ParseFile parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*autodoc.ParseResult, error) {
	cmd := exec.CommandContext(ctx, p.command, append(append([]string{}, p.args...), path)...)
	return p.run(cmd)
}

// Parse parses source supplied on stdin.
func (p *Parser) Parse(ctx context.Context, source string) (*autodoc.ParseResult, error) {
	cmd := exec.CommandContext(ctx, p.command, p.args...)
	cmd.Stdin = strings.NewReader(source)
	return p.run(cmd)
}

// run executes the command and decodes stdout. A non-zero exit is expected
// for parse failures, so the envelope is decoded before the exit status is
// consulted.
func (p *Parser) run(cmd *exec.Cmd) (*autodoc.ParseResult, error) {
	output, err := cmd.Output()

	var result autodoc.ParseResult
	if jsonErr := json.Unmarshal(output, &result); jsonErr == nil && envelopeValid(&result) {
		return &result, nil
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("typescript parser failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("typescript parser failed: %w", err)
	}
	return nil, fmt.Errorf("typescript parser returned invalid output: %q", string(output))
}

// envelopeValid checks that the decoded envelope is internally consistent:
// a success carries an AST, a failure carries an error.
func envelopeValid(r *autodoc.ParseResult) bool {
	if r.Success {
		return len(r.AST) > 0 && r.Error == nil
	}
	return r.Error != nil
}
