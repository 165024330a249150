package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noahmasoud/autodoc/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultReviewKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultReviewKeyMap()

	t.Run("ScrollDown binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
		assert.True(t, key.Matches(msg, km.ScrollDown), "j should match ScrollDown binding")

		msg = tea.KeyMsg{Type: tea.KeyDown}
		assert.True(t, key.Matches(msg, km.ScrollDown), "arrow down should match ScrollDown binding")
	})

	t.Run("ScrollUp binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
		assert.True(t, key.Matches(msg, km.ScrollUp), "k should match ScrollUp binding")
	})

	t.Run("HalfPage bindings", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp))
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown))
	})

	t.Run("Approve binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
		assert.True(t, key.Matches(msg, km.Approve), "a should match Approve binding")
	})

	t.Run("Reject binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
		assert.True(t, key.Matches(msg, km.Reject), "r should match Reject binding")
	})

	t.Run("ToggleView binding", func(t *testing.T) {
		t.Parallel()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}}
		assert.True(t, key.Matches(msg, km.ToggleView), "v should match ToggleView binding")
	})

	t.Run("CancelReject binding", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.CancelReject))
	})

	t.Run("SubmitReject binding", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, km.SubmitReject))
	})

	t.Run("Quit binding", func(t *testing.T) {
		t.Parallel()
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit))
		assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))
	})
}

func TestReviewKeyMap_HelpText(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultReviewKeyMap()

	assert.NotEmpty(t, km.Approve.Help().Key, "Approve should have help key")
	assert.NotEmpty(t, km.Approve.Help().Desc, "Approve should have help description")

	assert.NotEmpty(t, km.Reject.Help().Key, "Reject should have help key")
	assert.NotEmpty(t, km.Reject.Help().Desc, "Reject should have help description")

	assert.NotEmpty(t, km.ToggleView.Help().Key, "ToggleView should have help key")
	assert.NotEmpty(t, km.ToggleView.Help().Desc, "ToggleView should have help description")
}
