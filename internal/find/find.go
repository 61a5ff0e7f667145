// Package find runs queries against a loaded text document.
package find

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyDocument is returned when loading a document with no lines.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrInvalidLine is returned for a ":" query that is not a line number.
	ErrInvalidLine = errors.New("invalid line number")

	// ErrLineOutOfRange is returned for a ":" query past the document.
	ErrLineOutOfRange = errors.New("line out of range")
)

// Query prefixes.
const (
	PrefixLine = ':' // go to line
	PrefixWord = '#' // whole word
	PrefixAt   = '@' // case-sensitive substring
)

// Document is a text file split into lines.
type Document struct {
	Path  string
	Lines []string
}

// Match is one query hit. Col and Len are in runes.
type Match struct {
	Line int // 0-based
	Col  int
	Len  int
}

// ID returns a stable identifier for the match.
func (m Match) ID() string {
	return fmt.Sprintf("match-%d-%d", m.Line+1, m.Col+1)
}

// Options tune plain queries.
type Options struct {
	SmartCase bool
}

// Load reads a document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := Parse(path, string(data))
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("failed to load %s: %w", path, ErrEmptyDocument)
	}
	return doc, nil
}

// Parse splits text into a Document.
func Parse(path, text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &Document{Path: path}
	}
	return &Document{Path: path, Lines: strings.Split(text, "\n")}
}

// HasPrefix reports whether query starts with one of the marker runes.
func HasPrefix(query string) bool {
	if query == "" {
		return false
	}
	switch query[0] {
	case PrefixLine, PrefixWord, PrefixAt:
		return true
	}
	return false
}

// Search returns every match of query in the document, in reading order.
// An empty query matches nothing.
func (d *Document) Search(query string, opts Options) ([]Match, error) {
	if query == "" {
		return nil, nil
	}

	switch query[0] {
	case PrefixLine:
		return d.gotoLine(query[1:])
	case PrefixWord:
		return d.scan(query[1:], true, words), nil
	case PrefixAt:
		return d.scan(query[1:], true, nil), nil
	}

	caseSensitive := true
	if opts.SmartCase {
		caseSensitive = strings.IndexFunc(query, unicode.IsUpper) >= 0
	}
	return d.scan(query, caseSensitive, nil), nil
}

func (d *Document) gotoLine(arg string) ([]Match, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", arg, ErrInvalidLine)
	}
	if n < 1 || n > len(d.Lines) {
		return nil, fmt.Errorf("line %d of %d: %w", n, len(d.Lines), ErrLineOutOfRange)
	}
	return []Match{{Line: n - 1, Col: 0, Len: utf8.RuneCountInString(d.Lines[n-1])}}, nil
}

// boundary reports whether a hit at rune range [start, end) of line is acceptable.
type boundary func(line []rune, start, end int) bool

func words(line []rune, start, end int) bool {
	if start > 0 && isWordRune(line[start-1]) {
		return false
	}
	if end < len(line) && isWordRune(line[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (d *Document) scan(needle string, caseSensitive bool, accept boundary) []Match {
	if needle == "" {
		return nil
	}
	pat := []rune(needle)
	if !caseSensitive {
		pat = []rune(strings.ToLower(needle))
	}

	var matches []Match
	for i, text := range d.Lines {
		line := []rune(text)
		hay := line
		if !caseSensitive {
			hay = []rune(strings.ToLower(text))
		}
		for col := 0; col+len(pat) <= len(hay); {
			if !hasRunes(hay[col:], pat) {
				col++
				continue
			}
			if accept != nil && !accept(line, col, col+len(pat)) {
				col++
				continue
			}
			matches = append(matches, Match{Line: i, Col: col, Len: len(pat)})
			col += len(pat)
		}
	}
	return matches
}

func hasRunes(s, prefix []rune) bool {
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
