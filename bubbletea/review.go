// Package bubbletea provides the terminal review UI for documentation patches.
package bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noahmasoud/autodoc"
)

// reviewMode identifies the current interaction mode.
type reviewMode int

const (
	modeBrowse reviewMode = iota
	modeReject
)

const (
	// navigateBackDelay is how long the success notice stays on screen
	// before the UI returns to the caller.
	navigateBackDelay = 1500 * time.Millisecond

	// noticeDuration is how long transient notices stay visible.
	noticeDuration = 3 * time.Second
)

// Messages produced by review commands.
type (
	applyResultMsg struct {
		patch *autodoc.Patch
		err   error
	}
	rejectResultMsg struct {
		patch  *autodoc.Patch
		reason string
		err    error
	}
	navigateBackMsg  struct{}
	noticeExpiredMsg struct{ seq int }
)

// ReviewModel is the Bubble Tea model for reviewing a single patch.
type ReviewModel struct {
	// Data
	patch *autodoc.Patch
	lines []autodoc.DiffLine
	svc   autodoc.PatchService

	// UI components
	viewport    viewport.Model
	rejectInput textarea.Model

	// State
	mode      reviewMode
	viewMode  autodoc.ViewMode
	inFlight  bool
	notice    string
	noticeSeq int
	ready     bool

	// Rendering
	width, height int
	theme         autodoc.Theme
	renderer      *lipgloss.Renderer

	// Collaborators
	parser     autodoc.DiffTextParser
	detector   autodoc.LanguageDetector
	tokenizer  autodoc.Tokenizer
	wordDiffer autodoc.WordDiffer
	clipboard  autodoc.Clipboard
	journal    autodoc.ActionJournal
	approvedBy string

	// Keybindings
	keymap ReviewKeyMap
}

// ReviewModelOption configures a ReviewModel.
type ReviewModelOption func(*ReviewModel)

// WithTheme sets the color theme.
func WithTheme(theme autodoc.Theme) ReviewModelOption {
	return func(m *ReviewModel) {
		m.theme = theme
	}
}

// WithRenderer sets the lipgloss renderer, used by tests to force a color profile.
func WithRenderer(r *lipgloss.Renderer) ReviewModelOption {
	return func(m *ReviewModel) {
		m.renderer = r
	}
}

// WithDiffParser sets the parser used to derive rows from a unified-diff payload.
func WithDiffParser(parser autodoc.DiffTextParser) ReviewModelOption {
	return func(m *ReviewModel) {
		m.parser = parser
	}
}

// WithSyntaxHighlighting enables per-line syntax highlighting.
func WithSyntaxHighlighting(detector autodoc.LanguageDetector, tokenizer autodoc.Tokenizer) ReviewModelOption {
	return func(m *ReviewModel) {
		m.detector = detector
		m.tokenizer = tokenizer
	}
}

// WithWordDiffer enables word-level highlighting on modified rows.
func WithWordDiffer(differ autodoc.WordDiffer) ReviewModelOption {
	return func(m *ReviewModel) {
		m.wordDiffer = differ
	}
}

// WithClipboard enables copying the diff to the system clipboard.
func WithClipboard(clip autodoc.Clipboard) ReviewModelOption {
	return func(m *ReviewModel) {
		m.clipboard = clip
	}
}

// WithJournal records review decisions to a local audit journal.
func WithJournal(journal autodoc.ActionJournal) ReviewModelOption {
	return func(m *ReviewModel) {
		m.journal = journal
	}
}

// WithApprovedBy sets the reviewer name sent with approvals.
func WithApprovedBy(name string) ReviewModelOption {
	return func(m *ReviewModel) {
		m.approvedBy = name
	}
}

// WithViewMode sets the initial diff layout.
func WithViewMode(mode autodoc.ViewMode) ReviewModelOption {
	return func(m *ReviewModel) {
		m.viewMode = mode
	}
}

// NewReviewModel creates a ReviewModel for the given patch.
func NewReviewModel(patch *autodoc.Patch, svc autodoc.PatchService, opts ...ReviewModelOption) ReviewModel {
	m := ReviewModel{
		patch:    patch,
		svc:      svc,
		mode:     modeBrowse,
		viewMode: autodoc.ViewSideBySide,
		keymap:   DefaultReviewKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.lines = autodoc.ResolveLines(patch, m.parser)

	return m
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeReject {
			return m.handleRejectKeys(msg)
		}
		return m.handleBrowseKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case applyResultMsg:
		return m.handleApplyResult(msg)

	case rejectResultMsg:
		return m.handleRejectResult(msg)

	case navigateBackMsg:
		return m, tea.Quit

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ReviewModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ScrollDown):
		m.viewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp):
		m.viewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keymap.GotoTop):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleView):
		if m.viewMode == autodoc.ViewSideBySide {
			m.viewMode = autodoc.ViewUnified
		} else {
			m.viewMode = autodoc.ViewSideBySide
		}
		m.updateViewportContent()
		return m, nil

	case key.Matches(msg, m.keymap.Approve):
		return m.startApprove()

	case key.Matches(msg, m.keymap.Reject):
		return m.enterRejectMode()

	case key.Matches(msg, m.keymap.CopyDiff):
		return m.copyDiff()
	}

	return m, nil
}

func (m ReviewModel) handleRejectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.CancelReject):
		// Closing the dialog discards the reason and makes no network call.
		m.mode = modeBrowse
		return m, nil

	case key.Matches(msg, m.keymap.SubmitReject):
		return m.startReject(m.rejectInput.Value())
	}

	var cmd tea.Cmd
	m.rejectInput, cmd = m.rejectInput.Update(msg)
	return m, cmd
}

func (m ReviewModel) startApprove() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	if m.patch.Status.Terminal() {
		// No network call for a settled patch.
		return m.setNotice(fmt.Sprintf("patch is already %s", m.patch.Status))
	}

	m.inFlight = true
	id := m.patch.ID
	approvedBy := m.approvedBy
	svc := m.svc

	model, noticeCmd := m.setNotice("applying...")
	applyCmd := func() tea.Msg {
		patch, err := svc.Apply(context.Background(), id, approvedBy)
		return applyResultMsg{patch: patch, err: err}
	}
	return model, tea.Batch(noticeCmd, applyCmd)
}

func (m ReviewModel) handleApplyResult(msg applyResultMsg) (tea.Model, tea.Cmd) {
	m.inFlight = false
	if msg.err != nil {
		return m.setNotice(fmt.Sprintf("apply failed: %v", msg.err))
	}

	// The server's copy is authoritative.
	m.patch = msg.patch
	m.lines = autodoc.ResolveLines(m.patch, m.parser)
	m.updateViewportContent()
	m.recordAction("apply", "")

	model, noticeCmd := m.setNotice("patch applied")
	if m.patch.RunID != 0 {
		backCmd := tea.Tick(navigateBackDelay, func(time.Time) tea.Msg {
			return navigateBackMsg{}
		})
		return model, tea.Batch(noticeCmd, backCmd)
	}
	return model, noticeCmd
}

func (m ReviewModel) enterRejectMode() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	if m.patch.Status.Terminal() {
		return m.setNotice(fmt.Sprintf("patch is already %s", m.patch.Status))
	}

	ta := textarea.New()
	ta.Placeholder = "Reason for rejection..."
	ta.ShowLineNumbers = false
	ta.SetWidth(m.width - 4)
	ta.SetHeight(5)
	ta.Focus()

	m.rejectInput = ta
	m.mode = modeReject

	return m, textarea.Blink
}

func (m ReviewModel) startReject(reason string) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if m.inFlight {
		return m, nil
	}

	m.inFlight = true
	id := m.patch.ID
	svc := m.svc

	model, noticeCmd := m.setNotice("rejecting...")
	rejectCmd := func() tea.Msg {
		patch, err := svc.Reject(context.Background(), id, reason)
		return rejectResultMsg{patch: patch, reason: reason, err: err}
	}
	return model, tea.Batch(noticeCmd, rejectCmd)
}

func (m ReviewModel) handleRejectResult(msg rejectResultMsg) (tea.Model, tea.Cmd) {
	m.inFlight = false
	if msg.err != nil {
		return m.setNotice(fmt.Sprintf("reject failed: %v", msg.err))
	}

	m.patch = msg.patch
	m.lines = autodoc.ResolveLines(m.patch, m.parser)
	m.updateViewportContent()
	m.recordAction("reject", msg.reason)

	model, noticeCmd := m.setNotice("patch rejected")
	if m.patch.RunID != 0 {
		backCmd := tea.Tick(navigateBackDelay, func(time.Time) tea.Msg {
			return navigateBackMsg{}
		})
		return model, tea.Batch(noticeCmd, backCmd)
	}
	return model, noticeCmd
}

func (m ReviewModel) copyDiff() (tea.Model, tea.Cmd) {
	if m.clipboard == nil {
		return m.setNotice("clipboard not available")
	}
	if err := m.clipboard.Copy(plainDiff(m.lines)); err != nil {
		return m.setNotice(fmt.Sprintf("copy failed: %v", err))
	}
	return m.setNotice("diff copied to clipboard")
}

// recordAction appends to the local audit journal. Journal failures never
// interrupt the review flow.
func (m *ReviewModel) recordAction(action, reason string) {
	if m.journal == nil {
		return
	}
	_ = m.journal.Append(autodoc.ReviewAction{
		PatchID:    m.patch.ID,
		RunID:      m.patch.RunID,
		Action:     action,
		Status:     m.patch.Status,
		ReviewedBy: m.approvedBy,
		Reason:     reason,
		RecordedAt: time.Now(),
	})
}

func (m ReviewModel) setNotice(text string) (ReviewModel, tea.Cmd) {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *ReviewModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: header (1), notice (1), status bar (1)
	contentHeight := msg.Height - 3
	if contentHeight < 2 {
		contentHeight = 2
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = contentHeight
	}
	m.updateViewportContent()

	return m, nil
}

func (m *ReviewModel) updateViewportContent() {
	if m.patch == nil {
		m.viewport.SetContent("No patch loaded")
		return
	}

	var language string
	if m.detector != nil {
		language = m.detector.DetectFromPath(m.patch.PagePath)
	}

	cfg := renderConfig{
		lines:      m.lines,
		styles:     m.styles(),
		renderer:   m.renderer,
		width:      m.width,
		language:   language,
		tokenizer:  m.tokenizer,
		wordDiffer: m.wordDiffer,
	}

	var content string
	if m.viewMode == autodoc.ViewSideBySide {
		content = renderSideBySide(cfg)
	} else {
		content = renderUnified(cfg)
	}
	m.viewport.SetContent(content)
}

func (m ReviewModel) styles() autodoc.Styles {
	if m.theme == nil {
		return autodoc.Styles{}
	}
	return m.theme.Styles()
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.mode == modeReject {
		return m.renderRejectDialog()
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderNotice())
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())
	return s.String()
}

func (m ReviewModel) renderRejectDialog() string {
	var s strings.Builder

	header := m.newStyle().Bold(true).Render("REJECT PATCH")
	s.WriteString(header)
	s.WriteString("\n\n")
	s.WriteString(m.rejectInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.newStyle().Faint(true).Render("[ctrl+s] submit  [esc] cancel"))

	return s.String()
}

func (m ReviewModel) renderHeader() string {
	if m.patch == nil {
		return "No patch"
	}

	added, removed, modified := autodoc.Stats(m.lines)
	stats := fmt.Sprintf("+%d -%d ~%d", added, removed, modified)

	title := fmt.Sprintf("patch #%d", m.patch.ID)
	if m.patch.PagePath != "" {
		title += "  " + m.patch.PagePath
	}

	header := styleFromColorPair(m.styles().Header, m.renderer).Render(title + "  " + stats)
	if m.patch.Status != autodoc.StatusProposed {
		badge := styleFromColorPair(m.styles().StatusBadge, m.renderer).
			Render(fmt.Sprintf("[%s]", m.patch.Status))
		header += "  " + badge
	}
	return header
}

func (m ReviewModel) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return styleFromColorPair(m.styles().Notice, m.renderer).Render(m.notice)
}

func (m ReviewModel) renderStatusBar() string {
	layout := "side-by-side"
	if m.viewMode == autodoc.ViewUnified {
		layout = "unified"
	}
	// Settled patches offer no review controls.
	help := "[v]iew [y]ank [j/k]scroll [q]uit"
	if m.patch != nil && !m.patch.Status.Terminal() {
		help = "[a]pprove [r]eject " + help
	}
	return fmt.Sprintf("%s │ %s", layout, help)
}

func (m ReviewModel) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Review displays the patch review UI and blocks until the reviewer exits.
func Review(patch *autodoc.Patch, svc autodoc.PatchService, opts ...ReviewModelOption) error {
	m := NewReviewModel(patch, svc, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
