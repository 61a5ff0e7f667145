package tui

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samuelfullerthomas/findbar/internal/config"
	"github.com/samuelfullerthomas/findbar/internal/find"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
	"github.com/samuelfullerthomas/findbar/internal/searchinput"
	"github.com/samuelfullerthomas/findbar/internal/tui/components"
	"github.com/samuelfullerthomas/findbar/internal/tui/styles"
)

// Rows taken by everything except the document.
const chromeHeight = 6 // title, search frame (3), help, status

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	loc    l10n.Localizer
	doc    *find.Document
	keymap Keymap

	// Components
	search   *components.SearchInputModel
	viewport viewport.Model
	help     help.Model

	// Search state, owned here and handed to the search input as props
	query         string
	lastConfirmed string
	results       find.Results
	byLine        map[int][]find.Match
	searchErr     error
	searchOpen    bool
	shouldFocus   bool

	// Status line
	statusMsg string
	isError   bool

	// Dimensions
	width  int
	height int
}

// NewApp creates a new App over doc. The search bar starts open with
// initialQuery in it.
func NewApp(doc *find.Document, cfg *config.Config, loc l10n.Localizer, initialQuery string) *App {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator

	a := &App{
		config:      cfg,
		loc:         loc,
		doc:         doc,
		keymap:      DefaultKeymap(),
		viewport:    viewport.New(0, 0),
		help:        h,
		query:       initialQuery,
		searchOpen:  true,
		shouldFocus: true,
	}
	a.runSearch()
	a.search = components.NewSearchInput(a.searchProps(), loc)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// searchProps builds the search input's props from the app state.
func (a *App) searchProps() components.SearchInputProps {
	cfg := searchinput.DefaultConfig()
	cfg.Query = a.query
	cfg.Placeholder = a.placeholder()
	cfg.HasPrefix = find.HasPrefix(a.query)
	cfg.ShouldFocus = a.shouldFocus
	cfg.Count = a.results.Len()
	cfg.ShowErrorEmoji = a.query != "" && a.results.Len() == 0
	cfg.Size = a.config.UI.Size
	cfg.SummaryMsg = a.summary()
	cfg.ShowClose = a.config.UI.ShowClose
	if m, ok := a.results.Selected(); ok {
		cfg.SelectedItemID = m.ID()
		cfg.Expanded = true
	}

	return components.SearchInputProps{
		Config:          cfg,
		OnChange:        a.onQueryChange,
		OnKeyDown:       a.onSearchKeyDown,
		OnHistoryScroll: a.onQueryChange,
		HandlePrev:      a.prevResult,
		HandleNext:      a.nextResult,
		HandleClose:     a.closeSearch,
		OnBlur: func() tea.Cmd {
			log.Printf("search input blurred with query %q", a.query)
			return nil
		},
	}
}

func (a *App) placeholder() string {
	if a.config.UI.Placeholder != "" {
		return a.config.UI.Placeholder
	}
	return a.loc.GetStr(l10n.Placeholder)
}

// summary is the text next to the search field.
func (a *App) summary() string {
	if a.query == "" {
		return ""
	}
	if a.results.Len() == 0 {
		return a.loc.GetStr(l10n.NoResults)
	}
	if a.query[0] == find.PrefixLine {
		m, _ := a.results.Selected()
		return a.loc.GetFormatStr(l10n.GotoLine, m.Line+1)
	}
	return a.loc.GetFormatStr(l10n.ResultsSummary, a.results.Current+1, a.results.Len())
}

// runSearch recomputes the results for the current query.
func (a *App) runSearch() {
	matches, err := a.doc.Search(a.query, find.Options{SmartCase: a.config.UI.SmartCase})
	a.searchErr = err
	a.results = find.NewResults(matches)
	a.results.Nearest(a.viewport.YOffset)

	a.byLine = make(map[int][]find.Match, len(matches))
	for _, m := range matches {
		a.byLine[m.Line] = append(a.byLine[m.Line], m)
	}

	switch {
	case err == nil:
		a.clearStatus()
	case errors.Is(err, find.ErrInvalidLine), errors.Is(err, find.ErrLineOutOfRange):
		a.setError(err.Error())
	default:
		log.Printf("search %q failed: %v", a.query, err)
		a.setError(err.Error())
	}

	a.refreshDocument()
}

func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.isError = false
}

func (a *App) setError(msg string) {
	a.statusMsg = msg
	a.isError = true
}

func (a *App) clearStatus() {
	a.statusMsg = ""
	a.isError = false
}
