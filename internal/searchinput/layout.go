package searchinput

// Icon is the glyph shown at the start of the field.
type Icon int

const (
	IconSearch Icon = iota
	IconError
)

// Layout lists the parts of the widget a renderer should draw.
type Layout struct {
	Icon             Icon
	Focused          bool
	Empty            bool // error styling on the field
	ShowSummary      bool
	Summary          string
	ShowNav          bool
	ShowClose        bool
	Size             string
	ActiveDescendant string
}

// ComputeLayout applies the visibility rules to a config, the supplied
// handlers and the current state.
func ComputeLayout(cfg Config, h Handlers, s State) Layout {
	l := Layout{
		Icon:        IconSearch,
		Focused:     s.Focused,
		Empty:       cfg.ShowErrorEmoji,
		ShowSummary: cfg.SummaryMsg != "",
		Summary:     cfg.SummaryMsg,
		ShowNav:     h.HasNavigation() && cfg.Count > 1,
		ShowClose:   cfg.ShowClose,
		Size:        cfg.Size,
	}
	if cfg.ShowErrorEmoji {
		l.Icon = IconError
	}
	if cfg.Expanded && cfg.SelectedItemID != "" {
		l.ActiveDescendant = cfg.SelectedItemID + "-title"
	}
	return l
}
