package cli

import (
	"github.com/morrisclay/stack-builder/internal/config"
	"github.com/morrisclay/stack-builder/internal/prompt"
	"github.com/morrisclay/stack-builder/internal/question"
	"github.com/morrisclay/stack-builder/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runQuestionnaire asks every question and prints the answers on stdout.
// Nothing is printed if the prompts fail or are interrupted.
func runQuestionnaire(cmd *cobra.Command, a *app) error {
	format := a.output
	if format == "" {
		format = config.GetOutputFormat()
	}
	if err := render.CheckFormat(format); err != nil {
		return err
	}

	p := a.prompter
	if p == nil {
		if !isInputInteractive() {
			a.logger.Warn("stdin is not a terminal; reading answers from piped input")
		}
		p = prompt.NewTeaPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), a.logger)
	}

	questions := question.Catalog()
	answers, err := p.Ask(cmd.Context(), questions)
	if err != nil {
		return err
	}

	a.logger.Debug("rendering answers", zap.String("format", format), zap.Int("answers", answers.Len()))
	return render.Write(cmd.OutOrStdout(), format, answers, questions)
}
