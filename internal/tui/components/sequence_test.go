package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m SequenceModel, msgs ...tea.Msg) SequenceModel {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	out, ok := model.(SequenceModel)
	require.True(t, ok)
	return out
}

func down(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = downKey
	}
	return msgs
}

func newCatalogSequence(t *testing.T) SequenceModel {
	t.Helper()
	m, err := NewSequence("Stack Builder", question.Catalog())
	require.NoError(t, err)
	return m
}

func TestConfirmStepDefault(t *testing.T) {
	q, _ := question.Find(question.Catalog(), question.IsTypeScript)
	step := NewConfirmStep(q)

	step.Update(enterKey)
	assert.True(t, step.IsComplete())
	assert.Equal(t, true, step.Value())
	assert.Equal(t, "Yes", step.Display())
}

func TestConfirmStepKeys(t *testing.T) {
	q := question.Question{ID: "x", Kind: question.KindConfirm, Message: "?", Default: true}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{"yes", []tea.KeyMsg{runes("y")}, true},
		{"upper no", []tea.KeyMsg{runes("N")}, false},
		{"toggle then enter", []tea.KeyMsg{{Type: tea.KeyRight}, enterKey}, false},
		{"toggle twice", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, enterKey}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewConfirmStep(q)
			for _, k := range tt.keys {
				step.Update(k)
			}
			require.True(t, step.IsComplete())
			assert.Equal(t, tt.want, step.Value())
		})
	}
}

func TestSelectStepCarousel(t *testing.T) {
	q := question.Question{ID: "x", Kind: question.KindSelect, Choices: []string{"a", "b", "c"}, Carousel: true}
	step := NewSelectStep(q)

	step.Update(upKey)
	assert.Equal(t, 2, step.Cursor())
	step.Update(downKey)
	assert.Equal(t, 0, step.Cursor())
	step.Update(runes("j"))
	assert.Equal(t, 1, step.Cursor())

	step.Update(enterKey)
	assert.True(t, step.IsComplete())
	assert.Equal(t, "b", step.Value())
}

func TestSelectStepClamps(t *testing.T) {
	q := question.Question{ID: "x", Kind: question.KindSelect, Choices: []string{"a", "b"}}
	step := NewSelectStep(q)

	step.Update(upKey)
	assert.Equal(t, 0, step.Cursor())
	step.Update(downKey)
	step.Update(downKey)
	assert.Equal(t, 1, step.Cursor())
}

func TestSelectStepStartsOnDefault(t *testing.T) {
	q := question.Question{ID: "x", Kind: question.KindSelect, Choices: []string{"a", "b"}, Default: "b"}
	step := NewSelectStep(q)
	step.Update(enterKey)
	assert.Equal(t, "b", step.Value())
}

func TestNewStepRejectsBadQuestions(t *testing.T) {
	_, err := NewStep(question.Question{ID: "empty", Kind: question.KindSelect})
	assert.Error(t, err)

	_, err = NewStep(question.Question{ID: "odd", Kind: "text"})
	assert.Error(t, err)
}

func TestSequenceScenario(t *testing.T) {
	m := newCatalogSequence(t)

	var msgs []tea.Msg
	msgs = append(msgs, enterKey) // is_typescript: default
	msgs = append(msgs, down(3)...)
	msgs = append(msgs, enterKey) // framework: Next
	msgs = append(msgs, enterKey) // ui_framework: None
	msgs = append(msgs, downKey, enterKey)
	msgs = append(msgs, downKey, enterKey)
	msgs = append(msgs, downKey, enterKey)
	msgs = append(msgs, upKey, enterKey) // cloud_platform wraps to Vercel

	m = send(t, m, msgs...)
	require.True(t, m.Done())
	assert.False(t, m.Interrupted())

	answers := m.Answers()
	require.NoError(t, answers.Validate(question.Catalog()))
	assert.True(t, answers.Bool(question.IsTypeScript))
	assert.Equal(t, "Next", answers.String(question.Framework))
	assert.Equal(t, "None", answers.String(question.UIFramework))
	assert.Equal(t, "TailwindCSS", answers.String(question.CSSFramework))
	assert.Equal(t, "PostgreSQL", answers.String(question.Database))
	assert.Equal(t, "Prisma", answers.String(question.ORM))
	assert.Equal(t, "Vercel", answers.String(question.CloudPlatform))
}

func TestSequenceQuitsAfterLastAnswer(t *testing.T) {
	m := newCatalogSequence(t)
	for i := 0; i < 6; i++ {
		m = send(t, m, enterKey)
	}
	require.False(t, m.Done())

	model, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.(SequenceModel).Done())
}

func TestSequenceInterrupt(t *testing.T) {
	m := newCatalogSequence(t)
	m = send(t, m, enterKey, enterKey, enterKey, enterKey)
	require.Equal(t, question.Database, m.CurrentQuestion().ID)

	model, cmd := m.Update(ctrlC)
	m = model.(SequenceModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Done())
	assert.True(t, m.Interrupted())
	assert.Equal(t, 4, m.Answers().Len())
}

func TestSequenceBack(t *testing.T) {
	m := newCatalogSequence(t)
	m = send(t, m, runes("n"), enterKey)
	require.Equal(t, question.UIFramework, m.CurrentQuestion().ID)

	m = send(t, m, escKey)
	assert.Equal(t, question.Framework, m.CurrentQuestion().ID)
	assert.Equal(t, 1, m.Answers().Len())

	m = send(t, m, escKey, escKey)
	assert.Equal(t, question.IsTypeScript, m.CurrentQuestion().ID)
	assert.False(t, m.Done())
}

func TestSequenceView(t *testing.T) {
	m := newCatalogSequence(t)
	m = send(t, m, enterKey)

	view := m.View()
	assert.Contains(t, view, "Stack Builder")
	assert.Contains(t, view, "Do you want to use TypeScript?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "Choose a framework")
	assert.Contains(t, view, "Vite+Solid")
}

func TestSequenceInputClosed(t *testing.T) {
	m := newCatalogSequence(t)
	m = send(t, m, enterKey, enterKey)

	model, cmd := m.Update(InputClosedMsg{})
	m = model.(SequenceModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Done())
	assert.False(t, m.Interrupted())
	assert.Equal(t, question.UIFramework, m.CurrentQuestion().ID)
}
