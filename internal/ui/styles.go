package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for console output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - labels
	SuccessColor = lipgloss.Color("#43BF6D") // Green - secure transport
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - plaintext transport
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

var (
	// ArgKeyStyle is for "Argument  1:" labels
	ArgKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ArgValueStyle is for argument values
	ArgValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// SecureBannerStyle is for the wss:// banner
	SecureBannerStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// PlainBannerStyle is for the ws:// banner
	PlainBannerStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// UsageStyle is for the usage line
	UsageStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// ErrorTitleStyle is for the "Error:" prefix
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)
)
