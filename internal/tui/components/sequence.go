package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/tui"
)

// Step is one prompt in a sequence.
type Step interface {
	Question() question.Question
	Init() tea.Cmd
	Update(msg tea.Msg) (Step, tea.Cmd)
	View() string
	IsComplete() bool
	Value() any
	// Display is the answer as shown once the step is complete.
	Display() string
	// Reset reopens a completed step.
	Reset()
	HelpKeys() []key.Binding
}

// NewStep returns the step that asks q.
func NewStep(q question.Question) (Step, error) {
	switch q.Kind {
	case question.KindConfirm:
		return NewConfirmStep(q), nil
	case question.KindSelect:
		if len(q.Choices) == 0 {
			return nil, fmt.Errorf("question %s has no choices", q.ID)
		}
		return NewSelectStep(q), nil
	default:
		return nil, fmt.Errorf("question %s: unknown kind %q", q.ID, q.Kind)
	}
}

// InputClosedMsg reports that no more input will arrive.
type InputClosedMsg struct{}

// SequenceModel asks a fixed list of questions one after another.
type SequenceModel struct {
	title       string
	steps       []Step
	currentStep int
	keys        tui.KeyMap
	help        HelpModel
	done        bool
	interrupted bool
}

// NewSequence creates a sequence asking questions in order.
func NewSequence(title string, questions []question.Question) (SequenceModel, error) {
	steps := make([]Step, 0, len(questions))
	for _, q := range questions {
		step, err := NewStep(q)
		if err != nil {
			return SequenceModel{}, err
		}
		steps = append(steps, step)
	}
	return SequenceModel{
		title: title,
		steps: steps,
		keys:  tui.DefaultKeyMap(),
		help:  NewHelp(),
		done:  len(steps) == 0,
	}, nil
}

// Init implements tea.Model.
func (m SequenceModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}
	return m.steps[0].Init()
}

// Update implements tea.Model.
func (m SequenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help = m.help.Update(msg)
		return m, nil

	case InputClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			m.interrupted = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.currentStep > 0 {
				m.currentStep--
				m.steps[m.currentStep].Reset()
				return m, m.steps[m.currentStep].Init()
			}
			return m, nil
		}
	}

	step, cmd := m.steps[m.currentStep].Update(msg)
	m.steps[m.currentStep] = step

	if !step.IsComplete() {
		return m, cmd
	}
	if m.currentStep < len(m.steps)-1 {
		m.currentStep++
		return m, tea.Batch(cmd, m.steps[m.currentStep].Init())
	}
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m SequenceModel) View() string {
	var s strings.Builder

	if m.title != "" {
		s.WriteString(tui.TitleStyle.Render(m.title))
		s.WriteString("\n\n")
	}

	for i, step := range m.steps {
		if !step.IsComplete() || (i == m.currentStep && !m.done) {
			break
		}
		s.WriteString(promptLine(step.Question().Message))
		s.WriteString(" ")
		s.WriteString(tui.AnswerStyle.Render(step.Display()))
		s.WriteString("\n")
	}

	if m.done {
		return s.String()
	}

	step := m.steps[m.currentStep]
	s.WriteString(step.View())
	s.WriteString("\n")
	s.WriteString(tui.HelpStyle.Render(m.help.View(m.helpKeys(step))))
	s.WriteString("\n")

	return s.String()
}

func (m SequenceModel) helpKeys(step Step) []key.Binding {
	bindings := step.HelpKeys()
	if m.currentStep > 0 {
		bindings = append(bindings, m.keys.Back)
	}
	return bindings
}

// Done returns whether every question has been answered or the run was interrupted.
func (m SequenceModel) Done() bool { return m.done }

// Interrupted returns whether the user aborted the sequence.
func (m SequenceModel) Interrupted() bool { return m.interrupted }

// CurrentQuestion returns the question being asked.
func (m SequenceModel) CurrentQuestion() question.Question {
	return m.steps[m.currentStep].Question()
}

// Answers returns the collected answers in question order. It is only
// complete once Done reports true and Interrupted reports false.
func (m SequenceModel) Answers() question.AnswerSet {
	var answers question.AnswerSet
	for _, s := range m.steps {
		if !s.IsComplete() {
			break
		}
		answers.Set(s.Question().ID, s.Value())
	}
	return answers
}
