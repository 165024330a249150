package bubbletea_test

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/noahmasoud/autodoc"
	"github.com/noahmasoud/autodoc/bubbletea"
	dv "github.com/noahmasoud/autodoc/lipgloss"
	"github.com/noahmasoud/autodoc/mock"
	"github.com/stretchr/testify/assert"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func readyView(m bubbletea.ReviewModel, width, height int) string {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.View()
}

func TestRender_ThemedOutputContainsColors(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel(proposedPatch(), staticPatchService(nil),
		bubbletea.WithTheme(dv.DarkTheme()),
		bubbletea.WithRenderer(trueColorRenderer()),
	)

	view := readyView(m, 100, 30)

	assert.Contains(t, view, "\x1b[", "themed output should contain ANSI escapes")
	assert.Contains(t, view, "38;2;", "true color renderer should emit 24-bit colors")
}

func TestRender_StructuredDiffRowOrder(t *testing.T) {
	t.Parallel()

	patch := &autodoc.Patch{
		ID:       1,
		PagePath: "docs/api.md",
		StructuredDiff: &autodoc.StructuredDiff{
			Added:    []string{"brand new line"},
			Removed:  []string{"obsolete line"},
			Modified: []autodoc.ModifiedLine{{Line: 4, Old: "was this", New: "now this"}},
		},
		Status: autodoc.StatusProposed,
	}

	m := bubbletea.NewReviewModel(patch, staticPatchService(nil),
		bubbletea.WithViewMode(autodoc.ViewUnified),
	)

	view := readyView(m, 100, 40)

	removedIdx := strings.Index(view, "obsolete line")
	addedIdx := strings.Index(view, "brand new line")
	modifiedIdx := strings.Index(view, "was this")

	assert.Greater(t, removedIdx, -1)
	assert.Greater(t, addedIdx, removedIdx, "removed rows render before added rows")
	assert.Greater(t, modifiedIdx, addedIdx, "modified rows render last")
}

func TestRender_TabsExpandToStops(t *testing.T) {
	t.Parallel()

	patch := &autodoc.Patch{
		ID:       1,
		PagePath: "docs/table.md",
		Before:   "ab\tx\nname\tvalue",
		After:    "ab\ty\nname\tvalue",
		Status:   autodoc.StatusProposed,
	}

	m := bubbletea.NewReviewModel(patch, staticPatchService(nil),
		bubbletea.WithViewMode(autodoc.ViewUnified),
	)

	view := readyView(m, 100, 30)

	assert.NotContains(t, view, "\t", "tabs render as spaces")
	// A tab after column 2 jumps to the next 8-column stop.
	assert.Contains(t, view, "ab      x")
	assert.Contains(t, view, "name    value")
}

func TestRender_WordDifferHighlightsChanges(t *testing.T) {
	t.Parallel()

	var diffedOld, diffedNew string
	differ := &mock.WordDiffer{
		DiffFn: func(old, new string) (oldSegs, newSegs []autodoc.Segment) {
			diffedOld, diffedNew = old, new
			return []autodoc.Segment{
					{Text: "timeout ", Changed: false},
					{Text: "30", Changed: true},
				}, []autodoc.Segment{
					{Text: "timeout ", Changed: false},
					{Text: "60", Changed: true},
				}
		},
	}

	patch := &autodoc.Patch{
		ID:       1,
		PagePath: "docs/config.md",
		Before:   "timeout 30",
		After:    "timeout 60",
		Status:   autodoc.StatusProposed,
	}

	m := bubbletea.NewReviewModel(patch, staticPatchService(nil),
		bubbletea.WithWordDiffer(differ),
		bubbletea.WithViewMode(autodoc.ViewUnified),
	)

	view := readyView(m, 100, 30)

	assert.Equal(t, "timeout 30", diffedOld)
	assert.Equal(t, "timeout 60", diffedNew)
	assert.Contains(t, view, "timeout ")
}

func TestRender_TokenizerReceivesDetectedLanguage(t *testing.T) {
	t.Parallel()

	detector := &mock.LanguageDetector{
		DetectFromPathFn: func(path string) string {
			if strings.HasSuffix(path, ".md") {
				return "markdown"
			}
			return ""
		},
	}

	var tokenizedLang string
	tokenizer := &mock.Tokenizer{
		TokenizeFn: func(language, source string) []autodoc.Token {
			tokenizedLang = language
			return []autodoc.Token{{Text: source}}
		},
	}

	m := bubbletea.NewReviewModel(proposedPatch(), staticPatchService(nil),
		bubbletea.WithSyntaxHighlighting(detector, tokenizer),
		bubbletea.WithViewMode(autodoc.ViewUnified),
	)

	_ = readyView(m, 100, 30)

	assert.Equal(t, "markdown", tokenizedLang)
}
