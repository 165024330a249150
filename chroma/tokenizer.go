package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style
// function. Use StyleFromPalette to derive one from a theme palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits content into syntax-highlighted tokens for the given
// language. Returns nil if the language is not supported or tokenization
// fails; an empty slice for empty source.
func (t *Tokenizer) Tokenize(language, source string) []autodoc.Token {
	if source == "" {
		return []autodoc.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce merges runs of same-typed tokens.
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []autodoc.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, autodoc.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}
