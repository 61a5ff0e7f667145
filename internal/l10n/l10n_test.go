package l10n

import "testing"

func TestBundle_Defaults(t *testing.T) {
	b := New(nil)

	if got := b.GetStr(PrevResult); got != "Previous result" {
		t.Errorf("Expected default prev tooltip, got %q", got)
	}
	if got := b.GetFormatStr(ResultsSummary, 2, 7); got != "2 of 7 results" {
		t.Errorf("Expected formatted summary, got %q", got)
	}
	if got := b.GetFormatStr("missing.key", 1); got != "missing.key" {
		t.Errorf("Unknown key should render as itself, got %q", got)
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
editor.searchResults.nextResult: "Nächstes Ergebnis"
editor.noResults: ""
custom.key: "hello"
`)
	b, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := b.GetStr(NextResult); got != "Nächstes Ergebnis" {
		t.Errorf("Expected override, got %q", got)
	}
	if got := b.GetStr(NoResults); got != "No results found" {
		t.Errorf("Empty override should keep the default, got %q", got)
	}
	if got := b.GetStr("custom.key"); got != "hello" {
		t.Errorf("Expected custom key, got %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("- not\n- a map")); err == nil {
		t.Error("Expected an error for a YAML list")
	}
}
