package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// sideBySideWidth is the narrowest terminal that fits rows and preview
	// next to each other.
	sideBySideWidth = 80

	header = "📍 Места"
	tips   = "Type a place, press Tab or Enter on the last row to add another."
)

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render(tips))
	b.WriteString("\n\n")

	rowsView := m.renderRows()
	preview := m.renderPreview()
	if m.width >= sideBySideWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rowsView, "  ", preview))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rowsView, "", preview))
	}
	b.WriteString("\n")

	if toast := m.renderToast(); toast != "" {
		b.WriteString(toast)
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderRows renders every row followed by the clear-all button.
func (m *model) renderRows() string {
	parts := make([]string, 0, len(m.rows.entries)+1)
	for i, e := range m.rows.entries {
		focused := i == m.rows.focus

		label := labelStyle
		switch {
		case e.row.Transient():
			label = newRowLabelStyle
		case focused:
			label = focusedLabelStyle
		}

		box := inputBoxStyle
		if focused {
			box = focusedInputBoxStyle
		}

		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left,
			label.Render(e.row.Label()),
			box.Render(e.input.View()),
		))
	}

	button := buttonStyle
	if m.rows.focus == len(m.rows.entries) {
		button = focusedButtonStyle
	}
	parts = append(parts, "", button.Render("Clear all"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderPreview renders the preview box. Data is highlighted as JSON; the
// empty message is rendered dimmed.
func (m *model) renderPreview() string {
	var body string
	if m.data().Len() == 0 {
		body = emptyPreviewStyle.Render(m.preview.text)
	} else {
		body = m.highlighter.render(m.preview.text)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		previewTitleStyle.Render("Preview"),
		previewBoxStyle.Render(body),
	)
}

// renderToast renders the active toast notification, if any.
func (m *model) renderToast() string {
	if !m.toast.active {
		return ""
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s %s", m.toast.icon, m.toast.message))
	if m.toast.details != "" {
		content.WriteString("\n")
		content.WriteString(m.toast.details)
	}

	borderColor := salmonPink
	if m.toast.isError {
		borderColor = errorRed
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return "\n" + boxStyle.Render(content.String()) + "\n"
}
