package autodoc

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings are valid and
// indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for every visual element of a rendered patch.
type Styles struct {
	Added            ColorPair // rows present only in the after text
	Removed          ColorPair // rows present only in the before text
	Modified         ColorPair // rows whose text changed in place
	Unchanged        ColorPair // rows equal on both sides
	Header           ColorPair // patch/page header line
	LineNumber       ColorPair // gutter line numbers
	Notice           ColorPair // status bar notifications
	StatusBadge      ColorPair // applied/rejected/error badge
	AddedHighlight   ColorPair // changed words within after text (word-level diff)
	RemovedHighlight ColorPair // changed words within before text (word-level diff)
}

// Palette exposes semantic colors for syntax highlighting and UI chrome.
type Palette struct {
	Background string
	Foreground string

	Added    string
	Removed  string
	Modified string
	Context  string

	Keyword     string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Type        string
	Constant    string
	Punctuation string

	UIBackground string
	UIForeground string
	UIAccent     string
}

// Theme provides styles for rendering patches.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
