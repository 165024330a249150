package main

import (
	"strconv"

	"github.com/noahmasoud/autodoc/bubbletea"
	"github.com/noahmasoud/autodoc/chroma"
	"github.com/noahmasoud/autodoc/clipboard"
	"github.com/noahmasoud/autodoc/gitdiff"
	"github.com/noahmasoud/autodoc/lipgloss"
	"github.com/noahmasoud/autodoc/worddiff"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <patch-id>",
	Short: "Review a patch in the terminal UI",
	Args:  cobra.ExactArgs(1),
	Run:   runReview,
}

func runReview(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitError("invalid patch id %q", args[0])
	}

	c := initContext()

	patch, err := c.Client.Patch(cmd.Context(), id)
	if err != nil {
		exitError("fetching patch %d: %v", id, err)
	}

	theme := lipgloss.ByName(c.Config.UI.Theme)
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		exitError("%v", err)
	}

	opts := []bubbletea.ReviewModelOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithDiffParser(gitdiff.NewParser()),
		bubbletea.WithSyntaxHighlighting(chroma.NewDetector(), tokenizer),
		bubbletea.WithWordDiffer(worddiff.NewDiffer()),
		bubbletea.WithJournal(c.Journal),
		bubbletea.WithApprovedBy(c.Config.Review.ApprovedBy),
	}
	if clip, err := clipboard.New(); err == nil {
		opts = append(opts, bubbletea.WithClipboard(clip))
	}

	if err := bubbletea.Review(patch, c.Client, opts...); err != nil {
		exitError("%v", err)
	}
}
