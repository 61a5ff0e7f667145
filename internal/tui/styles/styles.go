// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused elements
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	barBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle()

	// Title is the style for the document title
	// NOTE: No margins - they break viewport line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Search shadow: the frame around the whole widget
var (
	SearchShadow = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	SearchShadowFocused = SearchShadow.
				BorderForeground(Highlight)
)

// Search field styles
var (
	// SearchIcon is the leading magnifying glass
	SearchIcon = lipgloss.NewStyle().
			Foreground(Highlight).
			PaddingRight(1)

	// SearchErrorIcon replaces SearchIcon when the query has no results
	SearchErrorIcon = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingRight(1)

	// SearchField is the text area; Empty marks a query with no results
	SearchField      = lipgloss.NewStyle()
	SearchFieldEmpty = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// SearchSelection is the initial text selection made on activation
	SearchSelection = lipgloss.NewStyle().
			Reverse(true)

	// SearchPlaceholder is shown while the field is empty
	SearchPlaceholder = lipgloss.NewStyle().
				Foreground(Subtle).
				Italic(true)

	// SearchSummary is the "n of m results" text
	SearchSummary = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(1)

	// NavButton is a previous/next result button
	NavButton = lipgloss.NewStyle().
			Foreground(Highlight).
			PaddingLeft(1)

	// CloseButton is the dismiss control
	CloseButton = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingLeft(1)
)

// Field widths by size tag
var fieldWidths = map[string]int{
	"":      40,
	"small": 24,
	"big":   60,
}

// FieldWidth returns the text field width for a size tag.
func FieldWidth(size string) int {
	if w, ok := fieldWidths[size]; ok {
		return w
	}
	return fieldWidths[""]
}

// Document styles
var (
	// LineNumber is the gutter
	LineNumber = lipgloss.NewStyle().
			Foreground(Subtle).
			PaddingRight(1)

	// LineNumberCurrent is the gutter of the line holding the current match
	LineNumberCurrent = lipgloss.NewStyle().
				Foreground(Highlight).
				Bold(true).
				PaddingRight(1)

	// Match highlights every hit of the query
	Match = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#FFF3A0", Dark: "#5C5000"})

	// MatchCurrent highlights the selected hit
	MatchCurrent = lipgloss.NewStyle().
			Background(WarningColor).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(barBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(barBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)
