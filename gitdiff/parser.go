// Package gitdiff converts unified diff text into review rows using
// bluekeyes/go-gitdiff.
package gitdiff

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/noahmasoud/autodoc"
)

// Parser parses the unified-diff payload a patch may carry in place of a
// structured diff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Lines parses diffText and flattens every hunk into DiffLines. Context
// lines become unchanged rows so the reviewer keeps the surrounding text.
// An empty or unparseable payload yields an error; callers fall back to
// positional derivation.
func (p *Parser) Lines(diffText string) ([]autodoc.DiffLine, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(diffText))
	if err != nil {
		return nil, err
	}

	var lines []autodoc.DiffLine
	for _, f := range files {
		for _, frag := range f.TextFragments {
			oldNum := int(frag.OldPosition)
			newNum := int(frag.NewPosition)

			for _, fl := range frag.Lines {
				content := strings.TrimSuffix(fl.Line, "\n")

				switch fl.Op {
				case gitdiff.OpContext:
					lines = append(lines, autodoc.DiffLine{
						Kind:   autodoc.LineUnchanged,
						Before: content,
						After:  content,
						Num:    newNum,
					})
					oldNum++
					newNum++
				case gitdiff.OpAdd:
					lines = append(lines, autodoc.DiffLine{
						Kind:  autodoc.LineAdded,
						After: content,
						Num:   newNum,
					})
					newNum++
				case gitdiff.OpDelete:
					lines = append(lines, autodoc.DiffLine{
						Kind:   autodoc.LineRemoved,
						Before: content,
						Num:    oldNum,
					})
					oldNum++
				}
			}
		}
	}

	return lines, nil
}
