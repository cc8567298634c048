// Package tui provides TUI components and styles for the stack-builder CLI.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors for the TUI theme.
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // Mauve
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#04A5E5", Dark: "#89DCEB"} // Sky
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // Green
	ColorError     = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // Red
	ColorMuted     = lipgloss.Color("#6B7280")                                 // Gray
	ColorBorder    = lipgloss.Color("#374151")                                 // Dark gray
	ColorHighlight = lipgloss.Color("212")
)

// Styles for common TUI elements.
var (
	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Question mark in front of each prompt
	PromptMarkStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// Question text
	QuestionStyle = lipgloss.NewStyle().
			Bold(true)

	// Answer recorded for a completed question
	AnswerStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Muted text style
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// Selected item style for lists
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Status box around the collected stack
	StatusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	// Heading inside the status box
	StatusHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// Value under a heading in the status box
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// ChoiceStyle returns the style for a choice in a list.
func ChoiceStyle(selected bool) lipgloss.Style {
	if selected {
		return SelectedStyle
	}
	return MutedStyle
}
