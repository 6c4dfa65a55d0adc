package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mikelcalvo/invoice-cli/internal/config"
)

// Palette
var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#7D56F4"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	subtleColor  = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#888888"}
	successColor = lipgloss.AdaptiveColor{Light: "#028A55", Dark: "#04B575"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF4444"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#B86E00", Dark: "#FF9500"}
	textColor    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	barBgColor   = lipgloss.AdaptiveColor{Light: "#E4E4E4", Dark: "#333333"}
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accentColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(barBgColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	creditStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(mutedColor).
			PaddingRight(1)

	notificationSuccess = lipgloss.NewStyle().
				Background(successColor).
				Foreground(lipgloss.Color("#FFF")).
				Padding(0, 1).
				Bold(true)

	notificationError = lipgloss.NewStyle().
				Background(errorColor).
				Foreground(lipgloss.Color("#FFF")).
				Padding(0, 1).
				Bold(true)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// Wizard form styles
	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	disabledStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Faint(true)

	totalStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	stepActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accentColor).
			Padding(0, 1)

	stepDoneStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Padding(0, 1)

	stepTodoStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accentColor).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(barBgColor).
				Padding(0, 2)
)

// ApplyTheme forces the adaptive palette to light or dark. System keeps the
// terminal's detected background.
func ApplyTheme(theme string) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}
