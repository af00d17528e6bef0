package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/executor/tui/types"
	"github.com/entrhq/mesto/pkg/form"
)

const (
	rowCharLimit  = 256
	rowInputWidth = 36
)

// rowEntry pairs a form row with the text input that renders it.
type rowEntry struct {
	row   *form.Row
	input textinput.Model
}

// rowContainer implements form.RowContainer on top of bubbles text inputs.
// The focus ring is every row followed by the clear-all button: focus ==
// len(entries) means the button has focus.
type rowContainer struct {
	entries []*rowEntry
	focus   int

	// refocus is set by RemoveAll so the first row mounted afterwards
	// takes focus.
	refocus bool

	keyListeners   []form.KeyListener
	inputListeners []form.InputListener

	cmds []tea.Cmd
}

func newRowContainer() *rowContainer {
	return &rowContainer{}
}

func (c *rowContainer) Append(row *form.Row) {
	ti := textinput.New()
	ti.Placeholder = row.Placeholder()
	ti.Prompt = ""
	ti.CharLimit = rowCharLimit
	ti.Width = rowInputWidth

	c.entries = append(c.entries, &rowEntry{row: row, input: ti})

	if c.refocus && len(c.entries)-1 == c.focus {
		c.refocus = false
		c.setFocus(c.focus)
	}
}

func (c *rowContainer) RemoveAll() {
	c.entries = nil
	c.focus = 0
	c.refocus = true
}

func (c *rowContainer) Focus(row *form.Row) {
	for i, e := range c.entries {
		if e.row == row {
			c.setFocus(i)
			return
		}
	}
}

func (c *rowContainer) OnKey(listener form.KeyListener) {
	c.keyListeners = append(c.keyListeners, listener)
}

func (c *rowContainer) OnInput(listener form.InputListener) {
	c.inputListeners = append(c.inputListeners, listener)
}

// setFocus moves focus to index i of the ring, blurring everything else.
func (c *rowContainer) setFocus(i int) {
	if i < 0 || i > len(c.entries) {
		return
	}
	c.focus = i
	for j, e := range c.entries {
		if j == i {
			c.cmds = append(c.cmds, e.input.Focus())
			continue
		}
		e.input.Blur()
	}
}

func (c *rowContainer) focusNext() {
	next := c.focus + 1
	if next > len(c.entries) {
		next = 0
	}
	c.setFocus(next)
}

func (c *rowContainer) focusPrev() {
	prev := c.focus - 1
	if prev < 0 {
		prev = len(c.entries)
	}
	c.setFocus(prev)
}

func (c *rowContainer) focusMode() types.FocusMode {
	if c.focus >= len(c.entries) {
		return types.FocusClearButton
	}
	return types.FocusRow
}

// focused returns the focused row entry, nil when the button has focus.
func (c *rowContainer) focused() *rowEntry {
	if c.focus < 0 || c.focus >= len(c.entries) {
		return nil
	}
	return c.entries[c.focus]
}

// dispatchKey hands a keystroke to the key listeners and reports whether
// one of them suppressed the default handling.
func (c *rowContainer) dispatchKey(entry *rowEntry, msg tea.KeyMsg) bool {
	event := form.NewKeyEvent(entry.row, formKey(msg))
	for _, l := range c.keyListeners {
		l.HandleKeyEvent(event)
	}
	return event.DefaultPrevented()
}

// edit applies msg to the entry's input and reports a value change to the
// input listeners.
func (c *rowContainer) edit(entry *rowEntry, msg tea.Msg) {
	before := entry.input.Value()

	var cmd tea.Cmd
	entry.input, cmd = entry.input.Update(msg)
	c.cmds = append(c.cmds, cmd)

	after := entry.input.Value()
	if after == before {
		return
	}
	event := form.InputEvent{Row: entry.row, Value: after}
	for _, l := range c.inputListeners {
		l.HandleInputEvent(event)
	}
}

func (c *rowContainer) drain() tea.Cmd {
	if len(c.cmds) == 0 {
		return nil
	}
	cmds := c.cmds
	c.cmds = nil
	return tea.Batch(cmds...)
}

// previewPane implements form.PreviewDisplay.
type previewPane struct {
	text string
}

func (p *previewPane) SetText(text string) {
	p.text = text
}

// clearButton implements form.ClearTrigger.
type clearButton struct {
	listeners []form.ClickListener
}

func (b *clearButton) OnClick(listener form.ClickListener) {
	b.listeners = append(b.listeners, listener)
}

// click activates the button.
func (b *clearButton) click() {
	for _, l := range b.listeners {
		l.HandleClick()
	}
}
