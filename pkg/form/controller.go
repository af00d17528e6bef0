// Package form implements a growable list of labeled text rows with a live
// structured preview.
//
// The Controller owns the form state and reacts to events reported by its
// mounting points (RowContainer, PreviewDisplay, ClearTrigger). It never
// renders anything itself, so any host that implements the mounting points
// can drive it: the terminal executor in pkg/executor/tui, or a fake in tests.
//
// A typical session:
//
//	c, err := form.New(container, preview, trigger, scheduler)
//	if err != nil { ... }
//	if err := c.Initialize(); err != nil { ... }
//	// the host now dispatches KeyEvents, InputEvents and clicks
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultLabelPrefix prefixes every row label: "Место 1", "Место 2", ...
	DefaultLabelPrefix = "Место"

	// DefaultAnimationDuration is how long a new row stays transient.
	DefaultAnimationDuration = 300 * time.Millisecond

	// DefaultFocusDelay is the pause between appending a row and focusing it.
	DefaultFocusDelay = 50 * time.Millisecond

	// initialRows is the number of rows created by Initialize and ClearAll.
	initialRows = 2
)

var (
	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("form already initialized")

	// ErrNotInitialized is returned by operations that need a ready form.
	ErrNotInitialized = errors.New("form not initialized")

	// ErrMissingMount is returned by New when a mounting point is nil.
	ErrMissingMount = errors.New("form mounting point missing")
)

// State is the lifecycle state of a Controller.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Logger is the logging surface the controller needs.
// *logging.Logger satisfies it.
type Logger interface {
	Debugf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Options tunes a Controller. Zero values fall back to the defaults.
type Options struct {
	LabelPrefix       string
	EmptyMessage      string
	AnimationDuration time.Duration
	FocusDelay        time.Duration
	Logger            Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLabelPrefix sets the word placed before each row number.
func WithLabelPrefix(prefix string) Option {
	return func(o *Options) { o.LabelPrefix = prefix }
}

// WithEmptyMessage sets the preview text shown when no row has content.
func WithEmptyMessage(msg string) Option {
	return func(o *Options) { o.EmptyMessage = msg }
}

// WithAnimationDuration sets how long new rows stay transient.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *Options) { o.AnimationDuration = d }
}

// WithFocusDelay sets the delay before a newly appended row is focused.
func WithFocusDelay(d time.Duration) Option {
	return func(o *Options) { o.FocusDelay = d }
}

// WithLogger attaches a debug logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		LabelPrefix:       DefaultLabelPrefix,
		EmptyMessage:      DefaultEmptyMessage,
		AnimationDuration: DefaultAnimationDuration,
		FocusDelay:        DefaultFocusDelay,
		Logger:            nopLogger{},
	}
}

// Controller owns the form state and keeps the preview in sync with it.
// It is not safe for concurrent use; every method must run on the host's
// event loop.
type Controller struct {
	opts Options

	container RowContainer
	preview   PreviewDisplay
	trigger   ClearTrigger
	scheduler Scheduler

	rows   []*Row
	nextID int
	state  State
}

// New creates an uninitialized controller bound to its mounting points.
func New(container RowContainer, preview PreviewDisplay, trigger ClearTrigger, scheduler Scheduler, opts ...Option) (*Controller, error) {
	switch {
	case container == nil:
		return nil, fmt.Errorf("%w: row container", ErrMissingMount)
	case preview == nil:
		return nil, fmt.Errorf("%w: preview display", ErrMissingMount)
	case trigger == nil:
		return nil, fmt.Errorf("%w: clear trigger", ErrMissingMount)
	case scheduler == nil:
		return nil, fmt.Errorf("%w: scheduler", ErrMissingMount)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(o.LabelPrefix) == "" {
		o.LabelPrefix = DefaultLabelPrefix
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = DefaultEmptyMessage
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}

	return &Controller{
		opts:      o,
		container: container,
		preview:   preview,
		trigger:   trigger,
		scheduler: scheduler,
	}, nil
}

// Initialize creates the two starting rows, registers the key, input and
// click observers, and renders the empty preview.
func (c *Controller) Initialize() error {
	if c.state == StateReady {
		return ErrAlreadyInitialized
	}

	c.addInitialRows()

	c.container.OnKey(KeyListenerFunc(c.HandleKey))
	c.container.OnInput(InputListenerFunc(c.handleInput))
	c.trigger.OnClick(ClickListenerFunc(func() {
		if err := c.ClearAll(); err != nil {
			c.opts.Logger.Debugf("clear ignored: %v", err)
		}
	}))

	c.state = StateReady
	c.UpdatePreview()
	c.opts.Logger.Debugf("form initialized with %d rows", len(c.rows))
	return nil
}

// AppendRow mounts one new row after the existing ones and returns it.
// The row is transient until the animation duration elapses.
func (c *Controller) AppendRow() *Row {
	c.nextID++
	row := newRow(c.nextID, c.opts.LabelPrefix)
	row.mounted = true
	c.rows = append(c.rows, row)
	c.container.Append(row)

	c.scheduler.Schedule(c.opts.AnimationDuration, func() {
		if !row.mounted {
			return
		}
		row.transient = false
	})

	c.opts.Logger.Debugf("appended row %s", row.ElementID())
	return row
}

// HandleKey reacts to a keystroke in a row. Tab and Enter on the last row
// grow the form when that row has content; every other keystroke is left
// to the host's default handling.
func (c *Controller) HandleKey(event *KeyEvent) {
	if c.state != StateReady || event == nil || event.Row == nil || !event.Row.mounted {
		return
	}
	if event.Row != c.lastRow() || strings.TrimSpace(event.Row.value) == "" {
		return
	}
	if event.Key != KeyTab && event.Key != KeyEnter {
		return
	}

	event.PreventDefault()
	row := c.AppendRow()

	c.scheduler.Schedule(c.opts.FocusDelay, func() {
		if !row.mounted {
			return
		}
		c.container.Focus(row)
	})
}

// UpdatePreview recomputes the preview and pushes it to the display.
// If the data cannot be rendered the display keeps its previous text.
func (c *Controller) UpdatePreview() {
	text, err := c.Data().Render(c.opts.EmptyMessage)
	if err != nil {
		c.opts.Logger.Debugf("preview not updated: %v", err)
		return
	}
	c.preview.SetText(text)
}

// ClearAll drops every row, restarts numbering and recreates the two
// starting rows.
func (c *Controller) ClearAll() error {
	if c.state != StateReady {
		return ErrNotInitialized
	}

	for _, row := range c.rows {
		row.mounted = false
	}
	c.container.RemoveAll()
	c.rows = nil
	c.nextID = 0

	c.addInitialRows()
	c.UpdatePreview()
	c.opts.Logger.Debugf("form cleared")
	return nil
}

// Rows returns the mounted rows in positional order.
func (c *Controller) Rows() []*Row {
	rows := make([]*Row, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// Data returns the current preview data.
func (c *Controller) Data() Data {
	return Collect(c.rows)
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// EmptyMessage returns the placeholder rendered for an empty preview.
func (c *Controller) EmptyMessage() string {
	return c.opts.EmptyMessage
}

func (c *Controller) handleInput(event InputEvent) {
	if c.state != StateReady || event.Row == nil || !event.Row.mounted {
		return
	}
	event.Row.value = event.Value
	c.UpdatePreview()
}

func (c *Controller) addInitialRows() {
	for i := 0; i < initialRows; i++ {
		c.AppendRow()
	}
}

func (c *Controller) lastRow() *Row {
	if len(c.rows) == 0 {
		return nil
	}
	return c.rows[len(c.rows)-1]
}
