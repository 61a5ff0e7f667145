package components

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
	"github.com/samuelfullerthomas/findbar/internal/searchinput"
	"github.com/samuelfullerthomas/findbar/internal/tui/styles"
	"github.com/samuelfullerthomas/findbar/internal/tui/utils"
)

const (
	iconSearch = "🔍"
	iconError  = "☹"
	iconPrev   = "▲"
	iconNext   = "▼"
	iconClose  = "✕"

	summaryWidth = 24
)

// SearchInputProps configure a SearchInputModel. Callbacks run synchronously
// inside Update; the command each one returns is batched into Update's result.
// A nil optional callback turns its feature off.
type SearchInputProps struct {
	searchinput.Config

	OnChange        func(value string) tea.Cmd
	OnKeyDown       func(msg tea.KeyMsg) tea.Cmd
	OnKeyUp         func(msg tea.KeyMsg) tea.Cmd
	OnFocus         func() tea.Cmd
	OnBlur          func() tea.Cmd
	HandlePrev      func() tea.Cmd
	HandleNext      func() tea.Cmd
	OnHistoryScroll func(value string) tea.Cmd
	HandleClose     func(msg tea.Msg) tea.Cmd
}

// SearchInputModel is a single-line search field with recall history, result
// navigation buttons and a dismiss button.
type SearchInputModel struct {
	input textinput.Model
	ctrl  *searchinput.Controller
	props SearchInputProps
	keys  SearchKeyMap
	help  help.Model

	// Selection in runes; empty when selStart == selEnd.
	selStart, selEnd int

	pending []tea.Cmd
	width   int
}

// NewSearchInput creates a SearchInputModel. Call Init once it is part of the
// view to run the activation sequence.
func NewSearchInput(props SearchInputProps, loc l10n.Localizer) *SearchInputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.PlaceholderStyle = styles.SearchPlaceholder

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator

	m := &SearchInputModel{
		input: ti,
		props: props,
		keys:  DefaultSearchKeyMap(loc),
		help:  h,
	}
	m.syncInput()
	m.ctrl = searchinput.New(m, props.Config, m.handlers())
	return m
}

// Init implements Component. It claims focus and selects the current query.
func (m *SearchInputModel) Init() tea.Cmd {
	m.ctrl.OnActivate()
	return m.flush()
}

// SetProps applies the host's props for this render.
func (m *SearchInputModel) SetProps(props SearchInputProps) tea.Cmd {
	m.props = props
	m.ctrl.SetHandlers(m.handlers())
	m.syncInput()
	m.ctrl.SetConfig(props.Config)
	return m.flush()
}

// Props returns the props of the last render.
func (m *SearchInputModel) Props() SearchInputProps {
	return m.props
}

// State returns the controller state.
func (m *SearchInputModel) State() searchinput.State {
	return m.ctrl.State()
}

// ActiveDescendant returns the ID of the item the host should treat as
// selected, or "" when none.
func (m *SearchInputModel) ActiveDescendant() string {
	return m.ctrl.Layout().ActiveDescendant
}

// syncInput copies host-owned props into the text input.
func (m *SearchInputModel) syncInput() {
	p := m.props
	if p.Query != m.input.Value() {
		m.input.SetValue(p.Query)
		m.input.CursorEnd()
		m.clearSelection()
	}
	m.input.Placeholder = p.Placeholder
	m.input.Width = styles.FieldWidth(p.Size)
	if p.ShowErrorEmoji {
		m.input.TextStyle = styles.SearchFieldEmpty
	} else {
		m.input.TextStyle = styles.SearchField
	}
}

// handlers adapts the props callbacks to the controller, leaving nil the ones
// the host did not supply.
func (m *SearchInputModel) handlers() searchinput.Handlers {
	p := m.props
	var h searchinput.Handlers

	if p.OnChange != nil {
		h.OnChange = func(v string) { m.emit(p.OnChange(v)) }
	}
	if p.OnKeyDown != nil {
		h.OnKeyDown = func(ev *searchinput.KeyEvent) { m.emit(p.OnKeyDown(keyMsgOf(ev))) }
	}
	if p.OnKeyUp != nil {
		h.OnKeyUp = func(ev *searchinput.KeyEvent) { m.emit(p.OnKeyUp(keyMsgOf(ev))) }
	}
	if p.OnFocus != nil {
		h.OnFocus = func() { m.emit(p.OnFocus()) }
	}
	if p.OnBlur != nil {
		h.OnBlur = func() { m.emit(p.OnBlur()) }
	}
	if p.HandlePrev != nil {
		h.HandlePrev = func() { m.emit(p.HandlePrev()) }
	}
	if p.HandleNext != nil {
		h.HandleNext = func() { m.emit(p.HandleNext()) }
	}
	if p.OnHistoryScroll != nil {
		h.OnHistoryScroll = func(v string) { m.emit(p.OnHistoryScroll(v)) }
	}
	if p.HandleClose != nil {
		h.HandleClose = func(ev searchinput.Event) { m.emit(p.HandleClose(ev)) }
	}
	return h
}

func keyMsgOf(ev *searchinput.KeyEvent) tea.KeyMsg {
	msg, _ := ev.Source.(tea.KeyMsg)
	return msg
}

func (m *SearchInputModel) emit(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *SearchInputModel) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// Update implements Component.
func (m *SearchInputModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		m.handleKeyMsg(msg)
		return m, m.flush()
	}

	// Cursor blink and other textinput messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg routes a key press to the controls, then to the controller,
// then to the text field unless the controller prevented it.
func (m *SearchInputModel) handleKeyMsg(msg tea.KeyMsg) {
	ev := searchinput.NewKeyEvent(m.classify(msg), msg)
	// Terminals report no key releases; the key is up once it has been handled.
	defer m.ctrl.KeyUp(ev)

	if m.ctrl.Layout().ShowClose && key.Matches(msg, m.keys.Close) {
		m.ctrl.Close(msg)
		return
	}
	if key.Matches(msg, m.keys.PrevResult) && m.ctrl.Prev() {
		return
	}
	if key.Matches(msg, m.keys.NextResult) && m.ctrl.Next() {
		return
	}

	m.ctrl.KeyDown(ev)
	if !ev.DefaultPrevented() {
		m.applyDefault(msg)
	}
}

func (m *SearchInputModel) classify(msg tea.KeyMsg) searchinput.Key {
	switch {
	case key.Matches(msg, m.keys.RecallPrev):
		return searchinput.KeyRecallPrev
	case key.Matches(msg, m.keys.RecallNext):
		return searchinput.KeyRecallNext
	case key.Matches(msg, m.keys.Confirm):
		return searchinput.KeyConfirm
	}
	return searchinput.KeyOther
}

// applyDefault lets the text field handle the key and reports any edit.
func (m *SearchInputModel) applyDefault(msg tea.KeyMsg) {
	before := m.input.Value()

	if !m.replaceSelection(msg) {
		m.clearSelection()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.emit(cmd)
	}

	if v := m.input.Value(); v != before {
		m.ctrl.Change(v)
	}
}

// replaceSelection applies typing and deletion over the selected text.
func (m *SearchInputModel) replaceSelection(msg tea.KeyMsg) bool {
	if !m.hasSelection() {
		return false
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if len(runes) == 0 {
			runes = []rune{' '}
		}
		m.splice(runes)
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		m.splice(nil)
		return true
	}
	return false
}

func (m *SearchInputModel) splice(insert []rune) {
	value := []rune(m.input.Value())
	start, end := m.selStart, m.selEnd

	next := make([]rune, 0, len(value)-(end-start)+len(insert))
	next = append(next, value[:start]...)
	next = append(next, insert...)
	next = append(next, value[end:]...)

	m.input.SetValue(string(next))
	m.input.SetCursor(start + len(insert))
	m.clearSelection()
}

// Focus implements Focusable and searchinput.Field.
func (m *SearchInputModel) Focus() {
	m.emit(m.input.Focus())
	m.ctrl.Focus()
}

// Blur implements Focusable.
func (m *SearchInputModel) Blur() {
	m.input.Blur()
	m.clearSelection()
	m.ctrl.Blur()
}

// BlurCmd blurs the field and returns the commands its callbacks produced.
func (m *SearchInputModel) BlurCmd() tea.Cmd {
	m.Blur()
	return m.flush()
}

// Focused implements Focusable.
func (m *SearchInputModel) Focused() bool {
	return m.input.Focused()
}

// Value implements searchinput.Field.
func (m *SearchInputModel) Value() string {
	return m.input.Value()
}

// SetSelectionRange implements searchinput.Field. The range is clamped to the
// text and the cursor moves to its end.
func (m *SearchInputModel) SetSelectionRange(start, end int) {
	n := utf8.RuneCountInString(m.input.Value())
	end = min(max(end, 0), n)
	start = min(max(start, 0), end)

	m.selStart, m.selEnd = start, end
	m.input.SetCursor(end)
}

// Selection returns the selected rune range.
func (m *SearchInputModel) Selection() (start, end int, ok bool) {
	return m.selStart, m.selEnd, m.hasSelection()
}

func (m *SearchInputModel) hasSelection() bool {
	return m.selStart < m.selEnd
}

func (m *SearchInputModel) clearSelection() {
	m.selStart, m.selEnd = 0, 0
}

// SetSize implements Component.
func (m *SearchInputModel) SetSize(width, height int) {
	m.width = width
	m.help.Width = width
}

// View implements Component.
func (m *SearchInputModel) View() string {
	l := m.ctrl.Layout()

	icon := styles.SearchIcon.Render(iconSearch)
	if l.Icon == searchinput.IconError {
		icon = styles.SearchErrorIcon.Render(iconError)
	}

	parts := []string{icon, m.renderField()}
	if l.ShowSummary {
		parts = append(parts, styles.SearchSummary.Render(utils.TruncateString(l.Summary, summaryWidth)))
	}
	if l.ShowNav {
		parts = append(parts,
			styles.NavButton.Render(iconPrev),
			styles.NavButton.Render(iconNext),
		)
	}
	if l.ShowClose {
		parts = append(parts, styles.CloseButton.Render(iconClose))
	}

	frame := styles.SearchShadow
	if l.Focused {
		frame = styles.SearchShadowFocused
	}
	if m.width > 0 {
		frame = frame.MaxWidth(m.width)
	}
	return frame.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

func (m *SearchInputModel) renderField() string {
	if !m.hasSelection() || !m.input.Focused() {
		return m.input.View()
	}

	value := []rune(m.input.Value())
	text := m.input.TextStyle
	s := text.Render(string(value[:m.selStart])) +
		styles.SearchSelection.Render(string(value[m.selStart:m.selEnd])) +
		text.Render(string(value[m.selEnd:]))
	return lipgloss.NewStyle().Width(m.input.Width + 1).Render(s)
}

// HelpView renders hints for the bindings that are currently live.
func (m *SearchInputModel) HelpView() string {
	return m.help.View(m)
}

// ShortHelp implements help.KeyMap.
func (m *SearchInputModel) ShortHelp() []key.Binding {
	l := m.ctrl.Layout()
	var bindings []key.Binding

	if m.props.OnHistoryScroll != nil {
		bindings = append(bindings, m.keys.RecallPrev, m.keys.RecallNext)
	}
	bindings = append(bindings, m.keys.Confirm)
	if l.ShowNav {
		if m.props.HandlePrev != nil {
			bindings = append(bindings, m.keys.PrevResult)
		}
		if m.props.HandleNext != nil {
			bindings = append(bindings, m.keys.NextResult)
		}
	}
	if l.ShowClose {
		bindings = append(bindings, m.keys.Close)
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (m *SearchInputModel) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
