package mock

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var (
	_ autodoc.Tokenizer        = (*Tokenizer)(nil)
	_ autodoc.LanguageDetector = (*LanguageDetector)(nil)
	_ autodoc.WordDiffer       = (*WordDiffer)(nil)
)

// Tokenizer is a mock implementation of autodoc.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []autodoc.Token
}

func (t *Tokenizer) Tokenize(language, source string) []autodoc.Token {
	return t.TokenizeFn(language, source)
}

// LanguageDetector is a mock implementation of autodoc.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

// WordDiffer is a mock implementation of autodoc.WordDiffer.
type WordDiffer struct {
	DiffFn func(old, new string) (oldSegs, newSegs []autodoc.Segment)
}

func (d *WordDiffer) Diff(old, new string) (oldSegs, newSegs []autodoc.Segment) {
	return d.DiffFn(old, new)
}
