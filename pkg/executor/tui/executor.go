// Package tui hosts the place-list form in the terminal.
//
// The files are split by concern:
// - executor.go: Executor and program lifecycle
// - model.go: model structure and construction
// - mount.go: the form's mounting points (rows, preview, clear button)
// - update.go: Bubble Tea Update and key routing
// - view.go: rendering
// - actions.go: clipboard and toast actions
// - scheduler.go: tea.Tick backed timers for the form
// - highlight.go: JSON preview highlighting
// - styles.go: color scheme and styling
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/config"
	"github.com/entrhq/mesto/pkg/form"
)

// Logger is the logging surface the executor needs.
// *logging.Logger satisfies it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Executor runs the form as a Bubble Tea program.
type Executor struct {
	logger    Logger
	highlight *bool
	clipboard func(string) error
	program   []tea.ProgramOption
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger attaches a logger to the executor and the form controller.
func WithLogger(l Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// WithHighlight overrides the configured preview highlighting.
func WithHighlight(enabled bool) Option {
	return func(e *Executor) { e.highlight = &enabled }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(e *Executor) { e.clipboard = write }
}

// WithProgramOptions passes extra options to tea.NewProgram, e.g. custom
// input and output for tests.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(e *Executor) { e.program = append(e.program, opts...) }
}

// NewExecutor creates a new TUI executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{logger: nopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = nopLogger{}
	}
	return e
}

// Run starts the program and blocks until the user exits or ctx is
// cancelled. It returns the form data at exit. On cancellation the data is
// returned together with ctx.Err().
func (e *Executor) Run(ctx context.Context) (form.Data, error) {
	mopts, altScreen := e.modelOptions()

	m, err := newModel(mopts)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	e.logger.Debugf("TUI executor starting")

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, e.program...)

	program := tea.NewProgram(m, programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return m.data(), ctx.Err()
		}
		return nil, fmt.Errorf("failed to run TUI program: %w", err)
	}

	data := m.data()
	e.logger.Debugf("TUI executor finished with %d fields", data.Len())
	return data, nil
}

// modelOptions reads the form and ui config sections, falling back to the
// defaults when the config system is not initialized.
func (e *Executor) modelOptions() (modelOptions, bool) {
	opts := modelOptions{
		highlight:     true,
		highlightName: "monokai",
		toastDuration: defaultToastDuration,
		logger:        e.logger,
		clipboard:     e.clipboard,
	}
	altScreen := true

	if config.IsInitialized() {
		if f := config.GetForm(); f != nil {
			prefix, empty, animation, focusDelay := f.Settings()
			opts.formOptions = []form.Option{
				form.WithLabelPrefix(prefix),
				form.WithEmptyMessage(empty),
				form.WithAnimationDuration(animation),
				form.WithFocusDelay(focusDelay),
			}
		}
		if ui := config.GetUI(); ui != nil {
			opts.highlight, opts.highlightName = ui.GetHighlight()
			opts.toastDuration = ui.GetToastDuration()
			altScreen = ui.UseAltScreen()
		}
	}

	if e.highlight != nil {
		opts.highlight = *e.highlight
	}
	return opts, altScreen
}
