// Package components provides the prompt components used by the questionnaire.
package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/tui"
)

// ConfirmStep is a yes/no prompt with a default.
type ConfirmStep struct {
	q    question.Question
	keys tui.KeyMap

	yes      bool // highlighted option
	value    bool
	complete bool
}

// NewConfirmStep creates a confirm step highlighting the question default.
func NewConfirmStep(q question.Question) *ConfirmStep {
	return &ConfirmStep{
		q:    q,
		keys: tui.DefaultKeyMap(),
		yes:  q.DefaultBool(),
	}
}

// Question implements Step.
func (s *ConfirmStep) Question() question.Question { return s.q }

// Init implements Step.
func (s *ConfirmStep) Init() tea.Cmd { return nil }

// Update implements Step.
func (s *ConfirmStep) Update(msg tea.Msg) (Step, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || s.complete {
		return s, nil
	}

	switch {
	case key.Matches(km, s.keys.Yes):
		s.answer(true)
	case key.Matches(km, s.keys.No):
		s.answer(false)
	case key.Matches(km, s.keys.Toggle):
		s.yes = !s.yes
	case key.Matches(km, s.keys.Enter):
		s.answer(s.yes)
	}
	return s, nil
}

func (s *ConfirmStep) answer(v bool) {
	s.yes = v
	s.value = v
	s.complete = true
}

// View implements Step.
func (s *ConfirmStep) View() string {
	hint := "(y/N)"
	if s.q.DefaultBool() {
		hint = "(Y/n)"
	}

	yes := tui.ChoiceStyle(s.yes).Render(pointer(s.yes) + "Yes")
	no := tui.ChoiceStyle(!s.yes).Render(pointer(!s.yes) + "No")

	return promptLine(s.q.Message) + " " + tui.MutedStyle.Render(hint) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, "  ", yes, "   ", no)
}

// IsComplete implements Step.
func (s *ConfirmStep) IsComplete() bool { return s.complete }

// Value implements Step.
func (s *ConfirmStep) Value() any { return s.value }

// Display implements Step.
func (s *ConfirmStep) Display() string {
	if s.value {
		return "Yes"
	}
	return "No"
}

// Reset implements Step.
func (s *ConfirmStep) Reset() {
	s.complete = false
}

// HelpKeys implements Step.
func (s *ConfirmStep) HelpKeys() []key.Binding { return s.keys.ConfirmHelp() }

func pointer(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func promptLine(message string) string {
	return tui.PromptMarkStyle.Render("?") + " " + tui.QuestionStyle.Render(message)
}
