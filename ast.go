package autodoc

import (
	"context"
	"encoding/json"
)

// ParseResult is the JSON envelope produced by the TypeScript parser bridge.
// Exactly one of AST or Error is set, depending on Success.
type ParseResult struct {
	Success bool            `json:"success"`
	AST     json.RawMessage `json:"ast,omitempty"`
	Error   *ParseIssue     `json:"error,omitempty"`
}

// ParseIssue describes why a source file could not be parsed.
type ParseIssue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// ASTParser produces an AST envelope for TypeScript source code. A failed
// parse is data, not an error: the returned result carries the issue and the
// error return is reserved for the bridge itself failing.
type ASTParser interface {
	// ParseFile parses the file at path.
	ParseFile(ctx context.Context, path string) (*ParseResult, error)

	// Parse parses source supplied directly.
	Parse(ctx context.Context, source string) (*ParseResult, error)
}
