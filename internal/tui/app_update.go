package tui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
	"github.com/samuelfullerthomas/findbar/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = max(msg.Height-chromeHeight, 1)
		a.search.SetSize(msg.Width, 3)
		a.help.Width = msg.Width
		a.refreshDocument()
		a.scrollToSelected()
		return a, nil

	case components.SearchClosedMsg:
		log.Printf("search closed with query %q", msg.Query)
		a.searchOpen = false
		a.shouldFocus = false
		cmd := a.search.BlurCmd()
		return a, tea.Batch(cmd, a.search.SetProps(a.searchProps()))

	case components.SearchConfirmedMsg:
		log.Printf("search confirmed: %q (%d results)", msg.Query, msg.Results)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.ForceQuit) {
			return a, tea.Quit
		}
		if a.searchOpen && !a.config.UI.ShowClose && msg.Type == tea.KeyEsc {
			return a, a.closeSearch(msg)
		}
		if a.searchOpen {
			_, cmd := a.search.Update(msg)
			return a, tea.Batch(cmd, a.search.SetProps(a.searchProps()))
		}
		return a, a.handleKeyMsg(msg)
	}

	// Cursor blink and the like
	_, cmd := a.search.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keys while the search bar is closed.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, a.keymap.Search):
		return a.openSearch()

	case key.Matches(msg, a.keymap.NextResult):
		a.nextResult()
		return a.search.SetProps(a.searchProps())

	case key.Matches(msg, a.keymap.PrevResult):
		a.prevResult()
		return a.search.SetProps(a.searchProps())

	case key.Matches(msg, a.keymap.Copy):
		return a.copySelectedLine()
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

// openSearch shows the search bar and raises the focus request.
func (a *App) openSearch() tea.Cmd {
	a.searchOpen = true
	a.shouldFocus = true
	return a.search.SetProps(a.searchProps())
}

// onQueryChange handles both typed edits and history recalls.
func (a *App) onQueryChange(value string) tea.Cmd {
	a.query = value
	a.runSearch()
	a.scrollToSelected()
	return nil
}

// onSearchKeyDown receives the keys the search input hands to its host.
func (a *App) onSearchKeyDown(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return a.confirmSearch()
	}
	return nil
}

// confirmSearch moves to the next result when the same query is submitted
// again, and rings the bell when there is nothing to show.
func (a *App) confirmSearch() tea.Cmd {
	if a.query == a.lastConfirmed {
		a.results.Next()
		a.refreshDocument()
	}
	a.lastConfirmed = a.query
	a.scrollToSelected()

	query, n := a.query, a.results.Len()
	cmds := []tea.Cmd{func() tea.Msg {
		return components.SearchConfirmedMsg{Query: query, Results: n}
	}}
	if n == 0 && query != "" && a.config.UI.Bell {
		cmds = append(cmds, bellCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) nextResult() tea.Cmd {
	a.results.Next()
	a.refreshDocument()
	a.scrollToSelected()
	return nil
}

func (a *App) prevResult() tea.Cmd {
	a.results.Prev()
	a.refreshDocument()
	a.scrollToSelected()
	return nil
}

// closeSearch is the dismiss callback; the bar hides when the message arrives.
func (a *App) closeSearch(tea.Msg) tea.Cmd {
	query := a.query
	return func() tea.Msg {
		return components.SearchClosedMsg{Query: query}
	}
}

// copySelectedLine copies the line holding the current match to the clipboard.
func (a *App) copySelectedLine() tea.Cmd {
	m, ok := a.results.Selected()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(a.doc.Lines[m.Line]); err != nil {
		log.Printf("failed to copy line %d: %v", m.Line+1, err)
		a.setError("Failed to copy: " + err.Error())
		return nil
	}
	a.setStatus(a.loc.GetFormatStr(l10n.Copied, m.Line+1))
	return nil
}

func bellCmd() tea.Cmd {
	return func() tea.Msg {
		if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			log.Printf("failed to ring bell: %v", err)
		}
		return nil
	}
}
