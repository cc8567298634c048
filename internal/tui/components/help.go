package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/morrisclay/stack-builder/internal/tui"
)

// HelpModel renders the key hints under the active prompt.
type HelpModel struct {
	help help.Model
}

// NewHelp creates a new help component.
func NewHelp() HelpModel {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(tui.ColorPrimary).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(tui.ColorMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(tui.ColorBorder)

	return HelpModel{help: h}
}

// Update tracks the terminal width.
func (m HelpModel) Update(msg tea.Msg) HelpModel {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = msg.Width
	}
	return m
}

// View returns the short help line for the given bindings.
func (m HelpModel) View(bindings []key.Binding) string {
	return m.help.ShortHelpView(bindings)
}
