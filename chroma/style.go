package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/noahmasoud/autodoc"
)

// StyleFunc maps chroma token types to autodoc styles.
type StyleFunc func(chromalib.TokenType) autodoc.Style

// StyleFromPalette returns a function that maps chroma token types to
// autodoc styles based on the provided palette colors.
func StyleFromPalette(p autodoc.Palette) StyleFunc {
	return func(tt chromalib.TokenType) autodoc.Style {
		switch tt {
		case chromalib.KeywordType:
			return autodoc.Style{Foreground: p.Type, Bold: true}

		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return autodoc.Style{Foreground: p.Keyword, Bold: true}

		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return autodoc.Style{Foreground: p.Comment}

		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return autodoc.Style{Foreground: p.String}

		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return autodoc.Style{Foreground: p.Number}

		case chromalib.Operator, chromalib.OperatorWord:
			return autodoc.Style{Foreground: p.Operator}

		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return autodoc.Style{Foreground: p.Function}

		case chromalib.NameConstant:
			return autodoc.Style{Foreground: p.Constant}

		case chromalib.Punctuation:
			return autodoc.Style{Foreground: p.Punctuation}

		// Markdown-heavy pages: headings and emphasis get the accent colors.
		case chromalib.GenericHeading, chromalib.GenericSubheading:
			return autodoc.Style{Foreground: p.Function, Bold: true}
		case chromalib.GenericEmph, chromalib.GenericStrong:
			return autodoc.Style{Foreground: p.Constant, Bold: true}

		default:
			return autodoc.Style{}
		}
	}
}
