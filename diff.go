package autodoc

import "strings"

// DiffKind classifies a rendered diff row.
type DiffKind int

// Diff row kinds.
const (
	LineUnchanged DiffKind = iota
	LineAdded
	LineRemoved
	LineModified
)

// DiffLine is one row of the rendered before/after comparison. Derived each
// time a patch is loaded; never persisted.
type DiffLine struct {
	Kind   DiffKind
	Before string // empty for added rows
	After  string // empty for removed rows
	Num    int    // 1-based source line number, 0 if unknown
}

// ViewMode selects the arrangement of the rendered diff. Toggling the mode
// never recomputes diff data, only the layout.
type ViewMode int

// View modes.
const (
	ViewSideBySide ViewMode = iota
	ViewUnified
)

// DeriveLines turns a patch into an ordered list of DiffLines.
//
// When the patch carries a non-empty structured diff the rows are emitted in
// source-list order: all removals, then all additions, then all modified
// pairs. No re-sorting or interleaving by line number takes place.
//
// Otherwise both texts are split on newlines and compared positionally up to
// the longer length: an index present only in the after text is added, only
// in the before text removed, equal at that index unchanged, differing
// modified. Insertions that shift subsequent indices therefore cascade as
// modified rows; callers wanting alignment must supply a structured diff.
func DeriveLines(p *Patch) []DiffLine {
	if p == nil {
		return nil
	}
	if !p.StructuredDiff.Empty() {
		return linesFromStructured(p.StructuredDiff)
	}
	return positionalLines(p.Before, p.After)
}

func linesFromStructured(d *StructuredDiff) []DiffLine {
	lines := make([]DiffLine, 0, len(d.Removed)+len(d.Added)+len(d.Modified))
	for _, text := range d.Removed {
		lines = append(lines, DiffLine{Kind: LineRemoved, Before: text})
	}
	for _, text := range d.Added {
		lines = append(lines, DiffLine{Kind: LineAdded, After: text})
	}
	for _, m := range d.Modified {
		lines = append(lines, DiffLine{Kind: LineModified, Before: m.Old, After: m.New, Num: m.Line})
	}
	return lines
}

func positionalLines(before, after string) []DiffLine {
	oldLines := splitLines(before)
	newLines := splitLines(after)

	n := len(oldLines)
	if len(newLines) > n {
		n = len(newLines)
	}

	lines := make([]DiffLine, 0, n)
	for i := 0; i < n; i++ {
		var line DiffLine
		line.Num = i + 1
		switch {
		case i >= len(oldLines):
			line.Kind = LineAdded
			line.After = newLines[i]
		case i >= len(newLines):
			line.Kind = LineRemoved
			line.Before = oldLines[i]
		case oldLines[i] == newLines[i]:
			line.Kind = LineUnchanged
			line.Before = oldLines[i]
			line.After = newLines[i]
		default:
			line.Kind = LineModified
			line.Before = oldLines[i]
			line.After = newLines[i]
		}
		lines = append(lines, line)
	}
	return lines
}

// splitLines splits on newlines, treating the empty string as zero lines
// rather than one empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Stats returns the number of added, removed and modified rows.
func Stats(lines []DiffLine) (added, removed, modified int) {
	for _, line := range lines {
		switch line.Kind {
		case LineAdded:
			added++
		case LineRemoved:
			removed++
		case LineModified:
			modified++
		}
	}
	return added, removed, modified
}

// DiffTextParser turns a unified-diff payload into review rows.
type DiffTextParser interface {
	// Lines parses diffText into ordered DiffLines.
	Lines(diffText string) ([]DiffLine, error)
}

// ResolveLines derives the rows for a patch, preferring the structured diff,
// then the unified-diff payload, then positional comparison. A parser error
// or empty parse falls through to the positional fallback.
func ResolveLines(p *Patch, parser DiffTextParser) []DiffLine {
	if p == nil {
		return nil
	}
	if !p.StructuredDiff.Empty() {
		return linesFromStructured(p.StructuredDiff)
	}
	if p.DiffText != "" && parser != nil {
		if lines, err := parser.Lines(p.DiffText); err == nil && len(lines) > 0 {
			return lines
		}
	}
	return positionalLines(p.Before, p.After)
}

// Segment represents a portion of text within a line for word-level diffing.
// Used to highlight the specific changed words within modified rows.
type Segment struct {
	Text    string // The text content of this segment
	Changed bool   // True if this segment differs between old/new versions
}

// WordDiffer computes word-level differences between two strings.
type WordDiffer interface {
	// Diff returns segments for both the old and new strings,
	// marking which portions changed between them.
	Diff(old, new string) (oldSegs, newSegs []Segment)
}
