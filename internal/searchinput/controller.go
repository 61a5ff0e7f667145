package searchinput

// Controller is the event-dispatch shell around State. It is driven from a
// single UI loop and is not safe for concurrent use.
type Controller struct {
	field    Field
	cfg      Config
	handlers Handlers
	state    State
}

// New creates a controller for a freshly mounted widget.
func New(field Field, cfg Config, handlers Handlers) *Controller {
	return &Controller{
		field:    field,
		cfg:      cfg,
		handlers: handlers,
		state:    NewState(),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Config returns the config of the last render.
func (c *Controller) Config() Config {
	return c.cfg
}

// Layout returns what should be rendered for the current config and state.
func (c *Controller) Layout() Layout {
	return ComputeLayout(c.cfg, c.handlers, c.state)
}

// SetHandlers replaces the host callbacks.
func (c *Controller) SetHandlers(h Handlers) {
	c.handlers = h
}

// OnActivate runs once the widget is mounted and visible.
func (c *Controller) OnActivate() {
	Activate(c.field, c.cfg.HasPrefix)
}

// OnConfigChanged records next as the current config and claims focus on a
// ShouldFocus rising edge.
func (c *Controller) OnConfigChanged(prev, next Config) {
	c.cfg = next
	if ShouldActivate(prev, next) {
		Activate(c.field, next.HasPrefix)
	}
}

// SetConfig is OnConfigChanged with the current config as prev.
func (c *Controller) SetConfig(next Config) {
	c.OnConfigChanged(c.cfg, next)
}

// KeyDown dispatches a key press through the history navigator.
func (c *Controller) KeyDown(ev *KeyEvent) {
	if !c.handlers.HasHistory() {
		c.forwardKeyDown(ev)
		return
	}

	value := ""
	if ev.Key == KeyConfirm && c.field != nil {
		value = c.field.Value()
	}

	next, eff := c.state.Apply(ev.Key, value)
	c.state = next

	if eff.PreventDefault {
		ev.PreventDefault()
	}
	if eff.HasRecall {
		c.handlers.OnHistoryScroll(eff.Recalled)
	}
	if eff.Forward {
		c.forwardKeyDown(ev)
	}
}

func (c *Controller) forwardKeyDown(ev *KeyEvent) {
	if c.handlers.OnKeyDown != nil {
		c.handlers.OnKeyDown(ev)
	}
}

// KeyUp forwards a key release to the host.
func (c *Controller) KeyUp(ev *KeyEvent) {
	if c.handlers.OnKeyUp != nil {
		c.handlers.OnKeyUp(ev)
	}
}

// Focus records that the field gained focus.
func (c *Controller) Focus() {
	c.state.Focused = true
	if c.handlers.OnFocus != nil {
		c.handlers.OnFocus()
	}
}

// Blur records that the field lost focus.
func (c *Controller) Blur() {
	c.state.Focused = false
	if c.handlers.OnBlur != nil {
		c.handlers.OnBlur()
	}
}

// Change reports an edit of the field's text.
func (c *Controller) Change(value string) {
	if c.handlers.OnChange != nil {
		c.handlers.OnChange(value)
	}
}

// Close reports activation of the dismiss control.
func (c *Controller) Close(ev Event) {
	if c.handlers.HandleClose != nil {
		c.handlers.HandleClose(ev)
	}
}

// Prev reports activation of the previous-result control. It does nothing
// while the control is hidden.
func (c *Controller) Prev() bool {
	if !c.Layout().ShowNav || c.handlers.HandlePrev == nil {
		return false
	}
	c.handlers.HandlePrev()
	return true
}

// Next reports activation of the next-result control. It does nothing while
// the control is hidden.
func (c *Controller) Next() bool {
	if !c.Layout().ShowNav || c.handlers.HandleNext == nil {
		return false
	}
	c.handlers.HandleNext()
	return true
}
