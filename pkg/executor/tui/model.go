package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/form"
)

const defaultToastDuration = 2 * time.Second

// model is the Bubble Tea model hosting one form.Controller.
type model struct {
	controller *form.Controller

	// Mounting points handed to the controller
	rows      *rowContainer
	preview   *previewPane
	clear     *clearButton
	scheduler form.Scheduler

	keys        keyMap
	help        help.Model
	highlighter *highlighter

	toast         toastNotification
	toastDuration time.Duration

	logger         Logger
	clipboardWrite func(string) error

	// Window dimensions
	width  int
	height int
}

// toastNotification represents a temporary notification message.
// seq identifies the toast so an older expiry timer cannot hide a newer one.
type toastNotification struct {
	active  bool
	message string
	details string
	icon    string
	isError bool
	seq     int
}

// toastExpiredMsg hides the toast with the matching sequence number
type toastExpiredMsg struct {
	seq int
}

// modelOptions carries everything newModel needs to build the form.
type modelOptions struct {
	formOptions   []form.Option
	scheduler     form.Scheduler
	highlight     bool
	highlightName string
	toastDuration time.Duration
	logger        Logger
	clipboard     func(string) error
}

// newModel creates the mounting points, binds a controller to them and
// initializes the form.
func newModel(opts modelOptions) (*model, error) {
	m := &model{
		rows:           newRowContainer(),
		preview:        &previewPane{},
		clear:          &clearButton{},
		scheduler:      opts.scheduler,
		keys:           defaultKeyMap(),
		help:           help.New(),
		highlighter:    newHighlighter(opts.highlight, opts.highlightName),
		toastDuration:  opts.toastDuration,
		logger:         opts.logger,
		clipboardWrite: opts.clipboard,
	}
	if m.scheduler == nil {
		m.scheduler = &teaScheduler{}
	}
	if m.toastDuration <= 0 {
		m.toastDuration = defaultToastDuration
	}
	if m.logger == nil {
		m.logger = nopLogger{}
	}
	if m.clipboardWrite == nil {
		m.clipboardWrite = clipboard.WriteAll
	}

	formOpts := append([]form.Option{form.WithLogger(m.logger)}, opts.formOptions...)
	controller, err := form.New(m.rows, m.preview, m.clear, m.scheduler, formOpts...)
	if err != nil {
		return nil, err
	}
	if err := controller.Initialize(); err != nil {
		return nil, err
	}
	m.controller = controller
	return m, nil
}

// Init hands the timers queued during initialization and the first focus
// blink to Bubble Tea.
func (m *model) Init() tea.Cmd {
	m.rows.setFocus(0)
	return m.flush(nil)
}

// data returns the form's current preview data.
func (m *model) data() form.Data {
	return m.controller.Data()
}
