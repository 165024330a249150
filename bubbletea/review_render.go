package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/noahmasoud/autodoc"
)

// renderConfig holds all rendering parameters for the diff views.
type renderConfig struct {
	lines      []autodoc.DiffLine
	styles     autodoc.Styles
	renderer   *lipgloss.Renderer
	width      int
	language   string
	tokenizer  autodoc.Tokenizer
	wordDiffer autodoc.WordDiffer
}

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// renderUnified renders the diff as a single column: removed rows first where
// the row order says so, each modified row expanded into its before and after
// halves.
func renderUnified(cfg renderConfig) string {
	gutterWidth := calculateGutterWidth(cfg.lines)

	addedStyle := styleFromColorPair(cfg.styles.Added, cfg.renderer)
	removedStyle := styleFromColorPair(cfg.styles.Removed, cfg.renderer)
	contextStyle := styleFromColorPair(cfg.styles.Unchanged, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	addedHighlight := styleFromColorPair(cfg.styles.AddedHighlight, cfg.renderer)
	removedHighlight := styleFromColorPair(cfg.styles.RemovedHighlight, cfg.renderer)

	contentWidth := cfg.width - gutterWidth - 1
	if contentWidth < 1 {
		contentWidth = 1
	}

	var sb strings.Builder
	for _, line := range cfg.lines {
		gutter := lineNumStyle.Render(formatLineNum(line.Num, gutterWidth) + " ")

		switch line.Kind {
		case autodoc.LineUnchanged:
			sb.WriteString(gutter)
			sb.WriteString(renderCell(" "+expandTabs(line.Before), cfg, cfg.styles.Unchanged, contextStyle, contentWidth))
			sb.WriteString("\n")

		case autodoc.LineAdded:
			sb.WriteString(gutter)
			sb.WriteString(renderCell("+"+expandTabs(line.After), cfg, cfg.styles.Added, addedStyle, contentWidth))
			sb.WriteString("\n")

		case autodoc.LineRemoved:
			sb.WriteString(gutter)
			sb.WriteString(renderCell("-"+expandTabs(line.Before), cfg, cfg.styles.Removed, removedStyle, contentWidth))
			sb.WriteString("\n")

		case autodoc.LineModified:
			oldSegs, newSegs := wordSegments(line, cfg.wordDiffer)

			sb.WriteString(gutter)
			if oldSegs != nil {
				sb.WriteString(renderLineWithSegments("-", oldSegs, removedStyle, removedHighlight, contentWidth))
			} else {
				sb.WriteString(renderCell("-"+expandTabs(line.Before), cfg, cfg.styles.Removed, removedStyle, contentWidth))
			}
			sb.WriteString("\n")

			sb.WriteString(lineNumStyle.Render(formatLineNum(0, gutterWidth) + " "))
			if newSegs != nil {
				sb.WriteString(renderLineWithSegments("+", newSegs, addedStyle, addedHighlight, contentWidth))
			} else {
				sb.WriteString(renderCell("+"+expandTabs(line.After), cfg, cfg.styles.Added, addedStyle, contentWidth))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderSideBySide renders the diff as before/after columns separated by a
// vertical rule, one row per DiffLine.
func renderSideBySide(cfg renderConfig) string {
	gutterWidth := calculateGutterWidth(cfg.lines)

	addedStyle := styleFromColorPair(cfg.styles.Added, cfg.renderer)
	removedStyle := styleFromColorPair(cfg.styles.Removed, cfg.renderer)
	contextStyle := styleFromColorPair(cfg.styles.Unchanged, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)
	addedHighlight := styleFromColorPair(cfg.styles.AddedHighlight, cfg.renderer)
	removedHighlight := styleFromColorPair(cfg.styles.RemovedHighlight, cfg.renderer)

	// Gutter, space, left column, divider, right column.
	colWidth := (cfg.width - gutterWidth - 2) / 2
	if colWidth < 1 {
		colWidth = 1
	}

	var sb strings.Builder
	for _, line := range cfg.lines {
		sb.WriteString(lineNumStyle.Render(formatLineNum(line.Num, gutterWidth) + " "))

		var left, right string
		switch line.Kind {
		case autodoc.LineUnchanged:
			left = renderCell(" "+expandTabs(line.Before), cfg, cfg.styles.Unchanged, contextStyle, colWidth)
			right = renderCell(" "+expandTabs(line.After), cfg, cfg.styles.Unchanged, contextStyle, colWidth)

		case autodoc.LineAdded:
			left = contextStyle.Render(padLine("", colWidth))
			right = renderCell("+"+expandTabs(line.After), cfg, cfg.styles.Added, addedStyle, colWidth)

		case autodoc.LineRemoved:
			left = renderCell("-"+expandTabs(line.Before), cfg, cfg.styles.Removed, removedStyle, colWidth)
			right = contextStyle.Render(padLine("", colWidth))

		case autodoc.LineModified:
			oldSegs, newSegs := wordSegments(line, cfg.wordDiffer)
			if oldSegs != nil {
				left = renderLineWithSegments("-", oldSegs, removedStyle, removedHighlight, colWidth)
			} else {
				left = renderCell("-"+expandTabs(line.Before), cfg, cfg.styles.Removed, removedStyle, colWidth)
			}
			if newSegs != nil {
				right = renderLineWithSegments("+", newSegs, addedStyle, addedHighlight, colWidth)
			} else {
				right = renderCell("+"+expandTabs(line.After), cfg, cfg.styles.Added, addedStyle, colWidth)
			}
		}

		sb.WriteString(left)
		sb.WriteString("│")
		sb.WriteString(right)
		sb.WriteString("\n")
	}
	return sb.String()
}

// tabWidth is the column width of a tab stop.
const tabWidth = 8

// expandTabs rewrites tabs as runs of spaces using 8-column tab stops so
// padded cells line up. Columns count display width, not runes.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += lipgloss.Width(string(r))
	}
	return sb.String()
}

// renderCell renders a prefixed line, trying syntax highlighting first and
// falling back to the plain diff style.
func renderCell(fullLine string, cfg renderConfig, colors autodoc.ColorPair, lineStyle lipgloss.Style, width int) string {
	if cfg.tokenizer != nil && cfg.language != "" && len(fullLine) > 1 {
		prefix, content := fullLine[:1], fullLine[1:]
		if tokens := cfg.tokenizer.Tokenize(cfg.language, content); tokens != nil {
			return renderLineWithTokens(prefix, tokens, colors, cfg.renderer, width)
		}
	}
	return lineStyle.Render(padLine(fullLine, width))
}

// wordSegments computes word-level diff segments for a modified row. Returns
// nil segments when word-level highlighting would not be useful.
func wordSegments(line autodoc.DiffLine, differ autodoc.WordDiffer) (oldSegs, newSegs []autodoc.Segment) {
	if differ == nil {
		return nil, nil
	}
	oldSegs, newSegs = differ.Diff(expandTabs(line.Before), expandTabs(line.After))
	if !hasSignificantUnchangedContent(oldSegs) || !hasSignificantUnchangedContent(newSegs) {
		return nil, nil
	}
	return oldSegs, newSegs
}

// hasSignificantUnchangedContent checks if segments have enough unchanged
// content to make word-level highlighting useful (at least 30% unchanged).
func hasSignificantUnchangedContent(segments []autodoc.Segment) bool {
	if len(segments) == 0 {
		return false
	}

	var unchangedLen, totalLen int
	for _, seg := range segments {
		totalLen += len(seg.Text)
		if !seg.Changed {
			unchangedLen += len(seg.Text)
		}
	}
	if totalLen == 0 {
		return false
	}
	return float64(unchangedLen)/float64(totalLen) >= 0.30
}

// renderLineWithSegments renders a line with word-level diff highlighting.
// Unchanged segments use baseStyle, changed segments use highlightStyle.
func renderLineWithSegments(prefix string, segments []autodoc.Segment, baseStyle, highlightStyle lipgloss.Style, width int) string {
	var sb strings.Builder
	sb.WriteString(baseStyle.Render(prefix))

	currentLen := lipgloss.Width(prefix)
	for _, seg := range segments {
		if seg.Changed {
			sb.WriteString(highlightStyle.Render(seg.Text))
		} else {
			sb.WriteString(baseStyle.Render(seg.Text))
		}
		currentLen += lipgloss.Width(seg.Text)
	}

	if currentLen < width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", width-currentLen)))
	}
	return sb.String()
}

// renderLineWithTokens renders a line with syntax highlighting. Each token
// gets its syntax foreground color combined with the diff background.
func renderLineWithTokens(prefix string, tokens []autodoc.Token, colors autodoc.ColorPair, renderer *lipgloss.Renderer, width int) string {
	newStyle := func() lipgloss.Style {
		if renderer != nil {
			return renderer.NewStyle()
		}
		return lipgloss.NewStyle()
	}

	baseStyle := newStyle()
	if colors.Foreground != "" {
		baseStyle = baseStyle.Foreground(lipgloss.Color(colors.Foreground))
	}
	if colors.Background != "" {
		baseStyle = baseStyle.Background(lipgloss.Color(colors.Background))
	}

	var sb strings.Builder
	sb.WriteString(baseStyle.Render(prefix))

	currentLen := lipgloss.Width(prefix)
	for _, tok := range tokens {
		style := newStyle()
		if colors.Background != "" {
			style = style.Background(lipgloss.Color(colors.Background))
		}
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		} else if colors.Foreground != "" {
			style = style.Foreground(lipgloss.Color(colors.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(tok.Text))
		currentLen += lipgloss.Width(tok.Text)
	}

	if currentLen < width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", width-currentLen)))
	}
	return sb.String()
}

// plainDiff renders the rows as unstyled unified-diff text, suitable for the
// clipboard.
func plainDiff(lines []autodoc.DiffLine) string {
	var sb strings.Builder
	for _, line := range lines {
		switch line.Kind {
		case autodoc.LineUnchanged:
			sb.WriteString(" " + line.Before + "\n")
		case autodoc.LineAdded:
			sb.WriteString("+" + line.After + "\n")
		case autodoc.LineRemoved:
			sb.WriteString("-" + line.Before + "\n")
		case autodoc.LineModified:
			sb.WriteString("-" + line.Before + "\n")
			sb.WriteString("+" + line.After + "\n")
		}
	}
	return sb.String()
}

// calculateGutterWidth determines the gutter width from the largest line
// number present in the rows.
func calculateGutterWidth(lines []autodoc.DiffLine) int {
	maxLineNum := 0
	for _, line := range lines {
		if line.Num > maxLineNum {
			maxLineNum = line.Num
		}
	}
	width := digitWidth(maxLineNum)
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

// formatLineNum formats a line number for the gutter. Returns a right-aligned
// number or empty space for zero (missing) line numbers.
func formatLineNum(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// styleFromColorPair creates a lipgloss style from a ColorPair. If renderer
// is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp autodoc.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// padLine pads a line with spaces to the specified display width. Uses
// lipgloss.Width() to correctly handle multi-byte Unicode characters.
func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
