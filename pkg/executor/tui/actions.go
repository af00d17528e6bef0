package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/mesto/pkg/executor/tui/types"
)

// copyPreview returns a command that puts the JSON preview on the system
// clipboard and reports the outcome as a toast.
func (m *model) copyPreview() tea.Cmd {
	data := m.data()
	emptyMessage := m.controller.EmptyMessage()
	write := m.clipboardWrite
	logger := m.logger

	return func() tea.Msg {
		if data.Len() == 0 {
			return types.ToastMsg{Message: "Nothing to copy", Details: emptyMessage, Icon: "ℹ️"}
		}

		text, err := data.Pretty()
		if err == nil {
			err = write(text)
		}
		if err != nil {
			logger.Warnf("Failed to copy preview: %v", err)
			return types.ToastMsg{Message: "Copy failed", Details: err.Error(), Icon: "❌", IsError: true}
		}

		logger.Debugf("copied %d fields to clipboard", data.Len())
		return types.ToastMsg{
			Message: "Copied to clipboard",
			Details: fmt.Sprintf("%d field(s)", data.Len()),
			Icon:    "📋",
		}
	}
}

// showToast displays a toast notification and schedules its expiry.
func (m *model) showToast(message, details, icon string, isError bool) tea.Cmd {
	m.toast.seq++
	m.toast.active = true
	m.toast.message = message
	m.toast.details = details
	m.toast.icon = icon
	m.toast.isError = isError

	seq := m.toast.seq
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
