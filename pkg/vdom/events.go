package vdom

// Event is delivered to listeners by the host.
type Event struct {
	Type   string // "click", "input", etc.
	Target any    // Host node the listener is registered on
	Value  string // Current value for input-like events
}

// Listener is an event handler registered on a host node. Listeners are
// compared by identity: building a new Listener on every render rebinds the
// handler, reusing one keeps the host registration untouched.
type Listener struct {
	fn func(Event)
}

// Listen wraps fn in a Listener.
func Listen(fn func(Event)) *Listener {
	return &Listener{fn: fn}
}

// Handle invokes the listener.
func (l *Listener) Handle(e Event) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(e)
}

// toListener normalizes the accepted handler shapes to a *Listener.
// Unsupported values are returned as is and rejected by the reconciler.
func toListener(handler any) any {
	switch h := handler.(type) {
	case *Listener:
		return h
	case func(Event):
		return Listen(h)
	case func():
		return Listen(func(Event) { h() })
	default:
		return handler
	}
}

// event creates an Attr for the given event prop name.
func event(prop string, handler any) Attr {
	return Attr{Key: prop, Value: toListener(handler)}
}

// On creates a listener attribute for an arbitrary event ("drop" -> "ondrop").
func On(name string, handler any) Attr {
	return event("on"+name, handler)
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return event("onClick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return event("onMouseEnter", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("onKeyDown", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Attr { return event("onInput", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Attr { return event("onChange", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Attr { return event("onSubmit", handler) }

