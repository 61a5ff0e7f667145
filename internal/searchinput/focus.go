package searchinput

import "unicode/utf8"

// Field is the text field the widget controls. The hosting environment
// provides it; SetSelectionRange implementations clamp end to the text length.
type Field interface {
	Focus()
	SetSelectionRange(start, end int)
	Value() string
}

// Activate claims focus for the field and selects its text, skipping the
// leading marker rune when hasPrefix is set. An empty field gets no selection.
func Activate(field Field, hasPrefix bool) {
	if field == nil {
		return
	}
	field.Focus()

	value := field.Value()
	if value == "" {
		return
	}

	start := 0
	if hasPrefix {
		start = 1
	}
	// One past the end; the field clamps it.
	field.SetSelectionRange(start, utf8.RuneCountInString(value)+1)
}

// ShouldActivate reports whether a config change is a focus request edge.
func ShouldActivate(prev, next Config) bool {
	return !prev.ShouldFocus && next.ShouldFocus
}
