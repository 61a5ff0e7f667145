// Package searchinput implements the controller behind the search input widget:
// the per-instance recall history, the focus and selection sequence that runs on
// activation, and the policy deciding which controls are shown.
//
// Nothing in this package knows about a concrete UI toolkit. The terminal
// component in internal/tui/components drives it through a Field and a set of
// Handlers.
package searchinput

import "slices"

// Key classifies a key event for the history navigator.
type Key int

const (
	KeyOther      Key = iota
	KeyRecallPrev     // walk back through history
	KeyRecallNext     // walk forward through history
	KeyConfirm        // submit the current value
)

// String returns a short name for the key kind.
func (k Key) String() string {
	switch k {
	case KeyRecallPrev:
		return "recall-prev"
	case KeyRecallNext:
		return "recall-next"
	case KeyConfirm:
		return "confirm"
	default:
		return "other"
	}
}

// State is the controller state owned by one widget instance.
// Values are never mutated in place; Apply returns a new State.
type State struct {
	Focused  bool
	History  []string // oldest first, no duplicates
	Position int      // last visited entry; meaningless while History is empty
}

// NewState returns the state of a freshly mounted widget.
func NewState() State {
	return State{}
}

// Effect describes what the shell must do after a transition.
type Effect struct {
	// Recalled is the history entry to hand to the recall callback.
	Recalled  string
	HasRecall bool

	// PreventDefault suppresses the field's own handling of the key.
	PreventDefault bool

	// Forward passes the event on to the host's key-down handler.
	Forward bool
}

// Apply runs one history transition. value is the field's current text and is
// only read for KeyConfirm.
func (s State) Apply(key Key, value string) (State, Effect) {
	switch key {
	case KeyRecallPrev:
		p := s.Position - 1
		entry, ok := s.entry(p)
		if !ok {
			return s, Effect{}
		}
		s.Position = p
		return s, Effect{Recalled: entry, HasRecall: true, PreventDefault: true}

	case KeyRecallNext:
		n := s.Position + 1
		entry, ok := s.entry(n)
		if !ok {
			return s, Effect{}
		}
		s.Position = n
		// Default is left alone here, unlike KeyRecallPrev.
		return s, Effect{Recalled: entry, HasRecall: true}

	case KeyConfirm:
		s.History = pushUnique(s.History, value)
		s.Position = len(s.History) - 1
		return s, Effect{Forward: true}
	}

	return s, Effect{}
}

// Len returns the number of history entries.
func (s State) Len() int {
	return len(s.History)
}

func (s State) entry(i int) (string, bool) {
	if i < 0 || i >= len(s.History) {
		return "", false
	}
	return s.History[i], true
}

// pushUnique returns a new slice with value moved (or appended) to the end.
func pushUnique(history []string, value string) []string {
	next := make([]string, 0, len(history)+1)
	for _, h := range history {
		if h != value {
			next = append(next, h)
		}
	}
	return append(next, value)
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	s.History = slices.Clone(s.History)
	return s
}
