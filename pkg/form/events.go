package form

// Key names the key pressed in a KeyEvent. Hosts translate their native
// key representation into these names; only Tab and Enter carry meaning here.
type Key string

const (
	KeyTab   Key = "Tab"
	KeyEnter Key = "Enter"
)

// KeyEvent is dispatched for every keystroke inside a row's input, before
// the keystroke changes the row's value.
type KeyEvent struct {
	Row *Row
	Key Key

	defaultPrevented bool
}

// NewKeyEvent creates a key event for the given row.
func NewKeyEvent(row *Row, key Key) *KeyEvent {
	return &KeyEvent{Row: row, Key: key}
}

// PreventDefault suppresses the host's default handling of the keystroke.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the default handling.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// InputEvent is dispatched after a row's value changed.
type InputEvent struct {
	Row   *Row
	Value string
}

// KeyListener observes key events on the row container.
type KeyListener interface {
	HandleKeyEvent(event *KeyEvent)
}

// InputListener observes value changes on the row container.
type InputListener interface {
	HandleInputEvent(event InputEvent)
}

// ClickListener observes activations of the clear-all trigger.
type ClickListener interface {
	HandleClick()
}

// KeyListenerFunc adapts a function to KeyListener.
type KeyListenerFunc func(event *KeyEvent)

func (f KeyListenerFunc) HandleKeyEvent(event *KeyEvent) { f(event) }

// InputListenerFunc adapts a function to InputListener.
type InputListenerFunc func(event InputEvent)

func (f InputListenerFunc) HandleInputEvent(event InputEvent) { f(event) }

// ClickListenerFunc adapts a function to ClickListener.
type ClickListenerFunc func()

func (f ClickListenerFunc) HandleClick() { f() }
