// Package prompt runs the questionnaire and returns the collected answers.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/tui/components"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts the questionnaire.
var ErrInterrupted = errors.New("interrupted")

// ErrInputClosed is returned when input ends before every question is answered.
var ErrInputClosed = errors.New("input closed")

// Prompter asks a list of questions and returns one answer per question.
type Prompter interface {
	Ask(ctx context.Context, questions []question.Question) (question.AnswerSet, error)
}

// TeaPrompter asks questions with a bubbletea program.
type TeaPrompter struct {
	Title  string
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger

	// Options are appended to the program options; tests use them to drop
	// the renderer or signal handler.
	Options []tea.ProgramOption
}

// NewTeaPrompter creates a prompter reading from in and drawing on out.
func NewTeaPrompter(in io.Reader, out io.Writer, logger *zap.Logger) *TeaPrompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeaPrompter{
		Title:  "Stack Builder",
		In:     in,
		Out:    out,
		Logger: logger,
	}
}

// Ask implements Prompter.
func (p *TeaPrompter) Ask(ctx context.Context, questions []question.Question) (question.AnswerSet, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := components.NewSequence(p.Title, questions)
	if err != nil {
		return question.AnswerSet{}, err
	}

	var (
		prog  *tea.Program
		piped *eofReader
	)
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		in := p.In
		if !isTerminal(in) {
			// bubbletea stops reading at EOF without telling the model.
			piped = &eofReader{r: in, onEOF: func() { prog.Send(components.InputClosedMsg{}) }}
			in = piped
		}
		opts = append(opts, tea.WithInput(in))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	opts = append(opts, p.Options...)

	logger.Debug("starting prompts", zap.Int("questions", len(questions)), zap.Bool("piped", piped != nil))
	prog = tea.NewProgram(model, opts...)
	final, err := prog.Run()
	if err != nil {
		return question.AnswerSet{}, runError(ctx, err)
	}

	seq, ok := final.(components.SequenceModel)
	if !ok {
		return question.AnswerSet{}, fmt.Errorf("unexpected model type %T", final)
	}
	if seq.Interrupted() {
		logger.Debug("prompts interrupted", zap.String("question", seq.CurrentQuestion().ID))
		return question.AnswerSet{}, ErrInterrupted
	}
	if !seq.Done() {
		return question.AnswerSet{}, fmt.Errorf("%w before %s was answered", ErrInputClosed, seq.CurrentQuestion().ID)
	}

	answers := seq.Answers()
	if err := answers.Validate(questions); err != nil {
		return question.AnswerSet{}, err
	}
	logger.Debug("prompts complete", zap.Strings("keys", answers.Keys()))
	return answers, nil
}

// runError maps a failed program run. A SIGINT caught by bubbletea is an
// interrupt like ctrl+c.
func runError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, tea.ErrInterrupted) {
		return ErrInterrupted
	}
	return fmt.Errorf("run prompts: %w", err)
}

// eofReader calls onEOF once when the wrapped reader is exhausted.
type eofReader struct {
	r     io.Reader
	onEOF func()
	once  sync.Once
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) {
		e.once.Do(e.onEOF)
	}
	return n, err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
