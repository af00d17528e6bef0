package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for the form's colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // primary accent, focus
	coralPink   = lipgloss.Color("#FFCCCB") // labels
	mintGreen   = lipgloss.Color("#A8E6CF") // freshly added rows, success
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
	errorRed    = lipgloss.Color("203")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(coralPink)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(salmonPink).
				Bold(true)

	// newRowLabelStyle marks rows that are still in their entry animation
	newRowLabelStyle = lipgloss.NewStyle().
				Foreground(mintGreen).
				Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	focusedInputBoxStyle = inputBoxStyle.
				BorderForeground(salmonPink)

	buttonStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Background(mutedGray).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				Background(salmonPink).
				Foreground(lipgloss.Color("#1F2937")).
				Bold(true)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(salmonPink)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(coralPink).
			Padding(0, 1)

	emptyPreviewStyle = lipgloss.NewStyle().
				Foreground(mutedGray).
				Italic(true)
)
