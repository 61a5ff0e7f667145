package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samuelfullerthomas/findbar/internal/config"
	"github.com/samuelfullerthomas/findbar/internal/find"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
	"github.com/samuelfullerthomas/findbar/internal/tui/components"
)

const sampleDoc = `package main

import "fmt"

func main() {
	fmt.Println("hello")
	fmt.Println("Hello, hello")
	helloWorld()
}
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Bell = false

	a := NewApp(find.Parse("main.go", sampleDoc), cfg, l10n.New(nil), "")
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func send(a *App, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		a.Update(msg)
	}
}

func typeText(a *App, s string) {
	for _, r := range s {
		send(a, string(r))
	}
}

func TestApp_TypingRunsSearch(t *testing.T) {
	a := newTestApp(t)

	typeText(a, "hello")

	if a.query != "hello" {
		t.Fatalf("Expected query hello, got %q", a.query)
	}
	if a.results.Len() != 4 {
		t.Errorf("Expected 4 results, got %d", a.results.Len())
	}
	p := a.search.Props()
	if p.Count != 4 || p.ShowErrorEmoji {
		t.Errorf("Unexpected props count=%d error=%v", p.Count, p.ShowErrorEmoji)
	}
	if p.SummaryMsg != "1 of 4 results" {
		t.Errorf("Expected summary, got %q", p.SummaryMsg)
	}
	if !p.Expanded || p.SelectedItemID != "match-6-15" {
		t.Errorf("Expected first match selected, got %q", p.SelectedItemID)
	}
	if got := a.search.ActiveDescendant(); got != "match-6-15-title" {
		t.Errorf("Expected active descendant, got %q", got)
	}

	view := a.View()
	if !strings.Contains(view, "main.go") || !strings.Contains(view, "1 of 4 results") {
		t.Error("Expected title and summary in the view")
	}
}

func TestApp_NoResults(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "zzz")

	p := a.search.Props()
	if !p.ShowErrorEmoji {
		t.Error("Expected error icon for a query with no results")
	}
	if p.SummaryMsg != "No results found" {
		t.Errorf("Expected no-results summary, got %q", p.SummaryMsg)
	}

	send(a, "enter")
	if got := a.search.State().History; !reflect.DeepEqual(got, []string{"zzz"}) {
		t.Errorf("Expected zzz in history, got %v", got)
	}
}

func TestApp_ConfirmAdvances(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "hello")

	send(a, "enter")
	if a.results.Current != 0 {
		t.Errorf("First confirm should keep the nearest match, got %d", a.results.Current)
	}
	send(a, "enter")
	if a.results.Current != 1 {
		t.Errorf("Second confirm should move on, got %d", a.results.Current)
	}
	if a.search.Props().SummaryMsg != "2 of 4 results" {
		t.Errorf("Expected 2 of 4, got %q", a.search.Props().SummaryMsg)
	}
	if got := a.search.State().History; !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("Repeated confirms should not duplicate history, got %v", got)
	}
}

func TestApp_HistoryRecall(t *testing.T) {
	a := newTestApp(t)

	typeText(a, "hello")
	send(a, "enter")
	send(a, "backspace", "backspace", "backspace", "backspace", "backspace")
	typeText(a, "main")
	send(a, "enter")

	send(a, "up")
	if a.query != "hello" || a.results.Len() != 4 {
		t.Errorf("Expected recall of hello with 4 results, got %q with %d", a.query, a.results.Len())
	}
	send(a, "down")
	if a.query != "main" || a.results.Len() != 2 {
		t.Errorf("Expected recall of main with 2 results, got %q with %d", a.query, a.results.Len())
	}
}

func TestApp_NavigationButtons(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "hello")

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if a.results.Current != 1 {
		t.Errorf("Expected next result, got %d", a.results.Current)
	}
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if a.results.Current != 3 {
		t.Errorf("Expected wrap to the last result, got %d", a.results.Current)
	}
}

func TestApp_CloseAndReopen(t *testing.T) {
	a := newTestApp(t)
	typeText(a, "hello")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected esc to produce a close command")
	}

	a.Update(components.SearchClosedMsg{Query: a.query})
	if a.searchOpen || a.search.Focused() {
		t.Fatal("Expected the search bar to be closed and blurred")
	}

	send(a, "n")
	if a.results.Current != 1 {
		t.Errorf("Expected n to move to the next result, got %d", a.results.Current)
	}
	send(a, "N")
	if a.results.Current != 0 {
		t.Errorf("Expected N to move back, got %d", a.results.Current)
	}

	send(a, "/")
	if !a.searchOpen || !a.search.Focused() {
		t.Fatal("Expected the search bar to reopen focused")
	}
	if start, end, ok := a.search.Selection(); !ok || start != 0 || end != 5 {
		t.Errorf("Expected the query selected on reopen, got [%d,%d)", start, end)
	}
}

func TestApp_GotoLine(t *testing.T) {
	a := newTestApp(t)
	typeText(a, ":3")

	p := a.search.Props()
	if !p.HasPrefix {
		t.Error("Expected a prefixed query")
	}
	if a.results.Len() != 1 || p.SummaryMsg != "Line 3" {
		t.Errorf("Expected one result on line 3, got %d %q", a.results.Len(), p.SummaryMsg)
	}

	typeText(a, "00")
	if a.statusMsg == "" || !a.isError {
		t.Error("Expected an out-of-range error in the status bar")
	}
	if !a.search.Props().ShowErrorEmoji {
		t.Error("Expected error icon for an out-of-range line")
	}
}

func TestApp_HiddenCloseButtonStillDismisses(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Bell = false
	cfg.UI.ShowClose = false

	a := NewApp(find.Parse("main.go", sampleDoc), cfg, l10n.New(nil), "fmt")
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if strings.Contains(a.search.View(), "✕") {
		t.Error("Close button should not render")
	}
	if _, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("Expected esc to close the bar")
	}
}
