package find

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sample = `package main

func main() {
	Println("hello")
	println("Hello, hello")
	helloWorld()
}
`

func TestSearch_SmartCase(t *testing.T) {
	doc := Parse("sample.go", sample)

	got, err := doc.Search("hello", Options{SmartCase: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []Match{
		{Line: 3, Col: 10, Len: 5},
		{Line: 4, Col: 10, Len: 5},
		{Line: 4, Col: 17, Len: 5},
		{Line: 5, Col: 1, Len: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Upper-case rune switches to case-sensitive
	got, _ = doc.Search("Hello", Options{SmartCase: true})
	if len(got) != 1 || got[0].Line != 4 {
		t.Errorf("Expected one case-sensitive match on line 5, got %v", got)
	}

	// Smart-case off is always case-sensitive
	got, _ = doc.Search("println", Options{})
	if len(got) != 1 {
		t.Errorf("Expected one exact match, got %v", got)
	}
}

func TestSearch_Prefixes(t *testing.T) {
	doc := Parse("sample.go", sample)

	got, _ := doc.Search("#hello", Options{SmartCase: true})
	if len(got) != 2 {
		t.Errorf("Whole-word search should skip helloWorld and Hello, got %v", got)
	}

	got, _ = doc.Search("@Hello", Options{SmartCase: true})
	if len(got) != 1 {
		t.Errorf("Expected one case-sensitive match, got %v", got)
	}

	got, err := doc.Search(":3", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Line != 2 || got[0].Len != 13 {
		t.Errorf("Expected line 3 match, got %v", got)
	}

	if _, err := doc.Search(":abc", Options{}); !errors.Is(err, ErrInvalidLine) {
		t.Errorf("Expected ErrInvalidLine, got %v", err)
	}
	if _, err := doc.Search(":99", Options{}); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("Expected ErrLineOutOfRange, got %v", err)
	}
	if got, err := doc.Search(":", Options{}); err != nil || got != nil {
		t.Errorf("A bare prefix should match nothing, got %v, %v", got, err)
	}
}

func TestSearch_Empty(t *testing.T) {
	doc := Parse("x", "abc")
	got, err := doc.Search("", Options{})
	if got != nil || err != nil {
		t.Errorf("Expected nothing for an empty query, got %v, %v", got, err)
	}
}

func TestHasPrefix(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"foo":   false,
		":12":   true,
		"#word": true,
		"@At":   true,
		"a:b":   false,
	}
	for q, want := range tests {
		if got := HasPrefix(q); got != want {
			t.Errorf("HasPrefix(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n"), 0600); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(doc.Lines, []string{"one", "two"}) {
		t.Errorf("Unexpected lines %q", doc.Lines)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got %v", err)
	}
}

func TestResults_Wrap(t *testing.T) {
	r := NewResults([]Match{{Line: 1}, {Line: 4}, {Line: 9}})

	r.Prev()
	if m, _ := r.Selected(); m.Line != 9 {
		t.Errorf("Prev from first should wrap to last, got line %d", m.Line)
	}
	r.Next()
	if m, _ := r.Selected(); m.Line != 1 {
		t.Errorf("Next from last should wrap to first, got line %d", m.Line)
	}

	r.Nearest(5)
	if r.Current != 2 {
		t.Errorf("Expected nearest index 2, got %d", r.Current)
	}
	r.Nearest(20)
	if r.Current != 0 {
		t.Errorf("Expected nearest to fall back to 0, got %d", r.Current)
	}

	var empty Results
	empty.Next()
	empty.Prev()
	if _, ok := empty.Selected(); ok {
		t.Error("Empty results should have no selection")
	}
}

func TestMatch_ID(t *testing.T) {
	if got := (Match{Line: 2, Col: 4}).ID(); got != "match-3-5" {
		t.Errorf("Expected match-3-5, got %s", got)
	}
}

func TestSearch_CaseFoldKeepsColumns(t *testing.T) {
	doc := Parse("fr.txt", "À L'ÉCOLE, l'école")

	got, _ := doc.Search("école", Options{SmartCase: true})
	want := []Match{{Line: 0, Col: 4, Len: 5}, {Line: 0, Col: 13, Len: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
