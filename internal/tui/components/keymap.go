package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/samuelfullerthomas/findbar/internal/l10n"
)

// SearchKeyMap holds the search input's key bindings.
type SearchKeyMap struct {
	RecallPrev key.Binding
	RecallNext key.Binding
	Confirm    key.Binding
	PrevResult key.Binding
	NextResult key.Binding
	Close      key.Binding
}

// DefaultSearchKeyMap returns the default bindings with help text from loc.
func DefaultSearchKeyMap(loc l10n.Localizer) SearchKeyMap {
	return SearchKeyMap{
		RecallPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", loc.GetStr(l10n.RecallPrev)),
		),
		RecallNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", loc.GetStr(l10n.RecallNext)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.GetStr(l10n.Confirm)),
		),
		PrevResult: key.NewBinding(
			key.WithKeys("ctrl+p", "shift+tab"),
			key.WithHelp("ctrl+p", loc.GetStr(l10n.PrevResult)),
		),
		NextResult: key.NewBinding(
			key.WithKeys("ctrl+n", "tab"),
			key.WithHelp("ctrl+n", loc.GetStr(l10n.NextResult)),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.GetStr(l10n.CloseSearch)),
		),
	}
}
