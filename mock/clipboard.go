package mock

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var _ autodoc.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of autodoc.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
