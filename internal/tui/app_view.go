package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samuelfullerthomas/findbar/internal/tui/styles"
	"github.com/samuelfullerthomas/findbar/internal/tui/utils"
)

const tabSpaces = "    "

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(utils.TruncateString(a.doc.Path, a.width)))
	b.WriteString("\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n")

	if a.searchOpen {
		b.WriteString(a.search.View())
		b.WriteString("\n")
		b.WriteString(a.search.HelpView())
	} else {
		b.WriteString(a.help.View(a.keymap))
	}
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())

	return styles.App.Render(b.String())
}

func (a *App) renderStatusBar() string {
	msg := a.statusMsg
	if msg == "" {
		msg = fmt.Sprintf("%d lines", len(a.doc.Lines))
	}
	msg = utils.TruncateString(msg, a.width-2)

	style := styles.StatusBar
	if a.statusMsg != "" {
		if a.isError {
			style = styles.StatusBarError
		} else {
			style = styles.StatusBarSuccess
		}
	}
	return lipgloss.NewStyle().Width(a.width).Render(style.Render(msg))
}

// refreshDocument re-renders the document into the viewport.
func (a *App) refreshDocument() {
	lines := make([]string, len(a.doc.Lines))
	gutter := len(fmt.Sprint(len(a.doc.Lines)))

	selectedLine := -1
	if m, ok := a.results.Selected(); ok {
		selectedLine = m.Line
	}

	for i := range a.doc.Lines {
		num := styles.LineNumber
		if i == selectedLine {
			num = styles.LineNumberCurrent
		}
		lines[i] = num.Render(fmt.Sprintf("%*d", gutter, i+1)) + a.renderLine(i)
	}
	a.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderLine highlights the matches on line i.
func (a *App) renderLine(i int) string {
	runes := []rune(a.doc.Lines[i])
	current, hasCurrent := a.results.Selected()

	var b strings.Builder
	pos := 0
	for _, m := range a.byLine[i] {
		if m.Col < pos || m.Col > len(runes) {
			continue
		}
		end := min(m.Col+m.Len, len(runes))
		b.WriteString(expandTabs(runes[pos:m.Col]))

		style := styles.Match
		if hasCurrent && m == current {
			style = styles.MatchCurrent
		}
		b.WriteString(style.Render(expandTabs(runes[m.Col:end])))
		pos = end
	}
	b.WriteString(expandTabs(runes[pos:]))
	return b.String()
}

func expandTabs(r []rune) string {
	return strings.ReplaceAll(string(r), "\t", tabSpaces)
}

// scrollToSelected brings the current match into view.
func (a *App) scrollToSelected() {
	m, ok := a.results.Selected()
	if !ok || a.viewport.Height == 0 {
		return
	}
	top := a.viewport.YOffset
	if m.Line >= top && m.Line < top+a.viewport.Height {
		return
	}
	a.viewport.SetYOffset(max(m.Line-a.viewport.Height/2, 0))
}
