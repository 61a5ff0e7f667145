// Package l10n provides the user-facing strings shown by the widget and the
// host: tooltips, summaries and placeholders.
package l10n

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Keys used by the application.
const (
	PrevResult     = "editor.searchResults.prevResult"
	NextResult     = "editor.searchResults.nextResult"
	CloseSearch    = "editor.searchResults.close"
	ResultsSummary = "editor.searchResults.summary"
	NoResults      = "editor.noResults"
	Placeholder    = "sourceSearch.search.placeholder"
	RecallPrev     = "sourceSearch.history.prev"
	RecallNext     = "sourceSearch.history.next"
	Confirm        = "sourceSearch.confirm"
	GotoLine       = "editor.gotoLine"
	Copied         = "editor.copied"
)

var defaults = map[string]string{
	PrevResult:     "Previous result",
	NextResult:     "Next result",
	CloseSearch:    "Close search",
	ResultsSummary: "%d of %d results",
	NoResults:      "No results found",
	Placeholder:    "Search in file…",
	RecallPrev:     "older search",
	RecallNext:     "newer search",
	Confirm:        "search",
	GotoLine:       "Line %d",
	Copied:         "Copied line %d",
}

// Localizer looks up display strings.
type Localizer interface {
	GetStr(key string) string
	GetFormatStr(key string, args ...any) string
}

// Bundle is a Localizer backed by a string table. Unknown keys render as
// the key itself.
type Bundle struct {
	strings map[string]string
}

// New returns a bundle with the built-in strings, with overrides applied on top.
func New(overrides map[string]string) *Bundle {
	b := &Bundle{strings: make(map[string]string, len(defaults)+len(overrides))}
	for k, v := range defaults {
		b.strings[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			b.strings[k] = v
		}
	}
	return b
}

// Parse builds a bundle from a flat YAML mapping of key to string.
func Parse(data []byte) (*Bundle, error) {
	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse strings: %w", err)
	}
	return New(overrides), nil
}

// GetStr implements Localizer.
func (b *Bundle) GetStr(key string) string {
	if s, ok := b.strings[key]; ok {
		return s
	}
	return key
}

// GetFormatStr implements Localizer.
func (b *Bundle) GetFormatStr(key string, args ...any) string {
	s, ok := b.strings[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
