package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/executor/tui/types"
)

// Update implements tea.Model. Every branch ends in flush so that focus
// commands from the inputs and timers queued by the controller reach the
// Bubble Tea runtime.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case scheduledTaskMsg:
		if msg.run != nil {
			msg.run()
		}

	case types.ToastMsg:
		cmd = m.showToast(msg.Message, msg.Details, msg.Icon, msg.IsError)

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.active = false
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		// Cursor blinks and the like belong to the focused input.
		if entry := m.rows.focused(); entry != nil {
			m.rows.edit(entry, msg)
		}
	}

	return m, m.flush(cmd)
}

// handleKey routes a keystroke. Global bindings win; then the clear button
// or the focused row gets it. Row keys go to the form controller first and
// fall through to navigation or editing unless the controller suppressed
// them.
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Clear):
		m.clear.click()
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyPreview()
	}

	if m.rows.focusMode() == types.FocusClearButton {
		switch {
		case msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace:
			m.clear.click()
		case key.Matches(msg, m.keys.Next):
			m.rows.focusNext()
		case key.Matches(msg, m.keys.Prev):
			m.rows.focusPrev()
		}
		return nil
	}

	entry := m.rows.focused()
	if entry == nil {
		return nil
	}
	if m.rows.dispatchKey(entry, msg) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.rows.focusNext()
	case key.Matches(msg, m.keys.Prev):
		m.rows.focusPrev()
	case msg.Type == tea.KeyEnter:
		// Enter only grows the form; elsewhere it is a no-op.
	default:
		m.rows.edit(entry, msg)
	}
	return nil
}

// flush batches cmd with pending input commands and scheduled timers.
func (m *model) flush(cmd tea.Cmd) tea.Cmd {
	pending := []tea.Cmd{cmd, m.rows.drain()}
	if s, ok := m.scheduler.(*teaScheduler); ok {
		pending = append(pending, s.drain())
	}

	var cmds []tea.Cmd
	for _, c := range pending {
		if c != nil {
			cmds = append(cmds, c)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
