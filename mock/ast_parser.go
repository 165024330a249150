package mock

import (
	"context"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.ASTParser = (*ASTParser)(nil)

// ASTParser is a mock implementation of autodoc.ASTParser.
type ASTParser struct {
	ParseFileFn func(ctx context.Context, path string) (*autodoc.ParseResult, error)
	ParseFn     func(ctx context.Context, source string) (*autodoc.ParseResult, error)
}

func (p *ASTParser) ParseFile(ctx context.Context, path string) (*autodoc.ParseResult, error) {
	return p.ParseFileFn(ctx, path)
}

func (p *ASTParser) Parse(ctx context.Context, source string) (*autodoc.ParseResult, error) {
	return p.ParseFn(ctx, source)
}
