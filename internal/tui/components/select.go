package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/tui"
)

// SelectStep picks exactly one entry from a fixed list of choices.
type SelectStep struct {
	q    question.Question
	keys tui.KeyMap

	cursor   int
	complete bool
}

// NewSelectStep creates a select step with the cursor on the default choice.
func NewSelectStep(q question.Question) *SelectStep {
	return &SelectStep{
		q:      q,
		keys:   tui.DefaultKeyMap(),
		cursor: q.DefaultIndex(),
	}
}

// Question implements Step.
func (s *SelectStep) Question() question.Question { return s.q }

// Init implements Step.
func (s *SelectStep) Init() tea.Cmd { return nil }

// Update implements Step.
func (s *SelectStep) Update(msg tea.Msg) (Step, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || s.complete || len(s.q.Choices) == 0 {
		return s, nil
	}

	switch {
	case key.Matches(km, s.keys.Up):
		s.move(-1)
	case key.Matches(km, s.keys.Down):
		s.move(1)
	case key.Matches(km, s.keys.Enter):
		s.complete = true
	}
	return s, nil
}

// move shifts the cursor, wrapping at the ends in carousel mode.
func (s *SelectStep) move(delta int) {
	n := len(s.q.Choices)
	next := s.cursor + delta
	if s.q.Carousel {
		s.cursor = (next%n + n) % n
		return
	}
	s.cursor = max(0, min(next, n-1))
}

// View implements Step.
func (s *SelectStep) View() string {
	var b strings.Builder
	b.WriteString(promptLine(s.q.Message))
	b.WriteString("\n")

	for i, opt := range s.q.Choices {
		b.WriteString(tui.ChoiceStyle(i == s.cursor).Render(pointer(i == s.cursor) + opt))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// IsComplete implements Step.
func (s *SelectStep) IsComplete() bool { return s.complete }

// Value implements Step.
func (s *SelectStep) Value() any {
	if s.cursor >= 0 && s.cursor < len(s.q.Choices) {
		return s.q.Choices[s.cursor]
	}
	return ""
}

// Display implements Step.
func (s *SelectStep) Display() string {
	v, _ := s.Value().(string)
	return v
}

// Reset implements Step.
func (s *SelectStep) Reset() {
	s.complete = false
}

// HelpKeys implements Step.
func (s *SelectStep) HelpKeys() []key.Binding { return s.keys.SelectHelp() }

// Cursor returns the index of the highlighted choice.
func (s *SelectStep) Cursor() int { return s.cursor }
