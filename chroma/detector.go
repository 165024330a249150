// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.LanguageDetector = (*Detector)(nil)

// Detector detects page languages from paths using chroma's lexer registry.
// Documentation pages are usually markdown, but AutoDoc also patches code
// samples and config files, so the full registry is consulted.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for the given path,
// or an empty string if the language cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	if path == "" {
		return ""
	}

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
