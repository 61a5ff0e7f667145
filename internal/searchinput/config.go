package searchinput

// Size tags accepted by Config.Size.
const (
	SizeDefault = ""
	SizeSmall   = "small"
	SizeBig     = "big"
)

// Config is supplied by the host on every render. The widget never changes it.
type Config struct {
	Query          string
	Placeholder    string
	HasPrefix      bool // selection starts after the first rune
	ShouldFocus    bool // false -> true claims focus
	Count          int  // result count; navigation needs more than one
	ShowErrorEmoji bool
	Size           string
	SummaryMsg     string
	ShowClose      bool
	SelectedItemID string
	Expanded       bool
}

// DefaultConfig returns a Config with the widget defaults applied.
func DefaultConfig() Config {
	return Config{
		Size:      SizeDefault,
		ShowClose: true,
	}
}

// Event is an opaque host event passed through to HandleClose.
type Event any

// KeyEvent is a key press travelling through the controller.
type KeyEvent struct {
	Key    Key
	Source any // the host's own event value

	defaultPrevented bool
}

// NewKeyEvent wraps a host key event.
func NewKeyEvent(key Key, source any) *KeyEvent {
	return &KeyEvent{Key: key, Source: source}
}

// PreventDefault stops the field from applying the key itself.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handlers are the host callbacks. OnChange, OnKeyDown and HandleClose are
// expected to be set; every other one may be nil, which disables the feature
// it backs.
type Handlers struct {
	OnChange        func(value string)
	OnKeyDown       func(ev *KeyEvent)
	OnKeyUp         func(ev *KeyEvent)
	OnFocus         func()
	OnBlur          func()
	HandlePrev      func()
	HandleNext      func()
	OnHistoryScroll func(value string)
	HandleClose     func(ev Event)
}

// HasNavigation reports whether at least one navigation handler is set.
func (h Handlers) HasNavigation() bool {
	return h.HandlePrev != nil || h.HandleNext != nil
}

// HasHistory reports whether the history navigator is enabled.
func (h Handlers) HasHistory() bool {
	return h.OnHistoryScroll != nil
}
