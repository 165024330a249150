package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ReviewKeyMap defines the key bindings for the patch review screen.
type ReviewKeyMap struct {
	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Layout
	ToggleView key.Binding

	// Review
	Approve key.Binding
	Reject  key.Binding

	// Reject dialog
	SubmitReject key.Binding
	CancelReject key.Binding

	// Export
	CopyDiff key.Binding

	// General
	Quit key.Binding
}

// DefaultReviewKeyMap returns the default key bindings for the review screen.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle side-by-side/unified"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a", "ctrl+enter"),
			key.WithHelp("a", "approve patch"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reject patch"),
		),
		SubmitReject: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit rejection"),
		),
		CancelReject: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		CopyDiff: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy diff to clipboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
