package mock

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var _ autodoc.DiffTextParser = (*DiffTextParser)(nil)

// DiffTextParser is a mock implementation of autodoc.DiffTextParser.
type DiffTextParser struct {
	LinesFn func(diffText string) ([]autodoc.DiffLine, error)
}

func (p *DiffTextParser) Lines(diffText string) ([]autodoc.DiffLine, error) {
	return p.LinesFn(diffText)
}
