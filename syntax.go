package autodoc

// Token represents a syntax-highlighted segment of page content.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from page content.
type Tokenizer interface {
	// Tokenize splits content into syntax-highlighted tokens for the given
	// language. Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector determines the markup or programming language of a
// documentation page from its path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path,
	// or an empty string if the language cannot be determined.
	DetectFromPath(path string) string
}
