package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Calm study-app tones.
var (
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	stylePass = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleFail = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
