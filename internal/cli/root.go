// Package cli implements the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/morrisclay/stack-builder/internal/logging"
	"github.com/morrisclay/stack-builder/internal/prompt"
	"github.com/morrisclay/stack-builder/internal/tui"
	"github.com/morrisclay/stack-builder/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ExitInterrupted is the exit code used when the questionnaire is aborted.
const ExitInterrupted = 130

// app holds what the commands share for one invocation.
type app struct {
	// prompter overrides the terminal prompter; nil means bubbletea on
	// the command's stdin and stderr.
	prompter prompt.Prompter
	logger   *zap.Logger

	debug  bool
	output string
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack-builder",
		Short: "Pick the tech stack for a new web project",
		Long: `stack-builder asks which language, framework, UI kit, CSS framework,
database, ORM and deployment target you want for a new project,
then prints your answers.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := logging.New(a.debug || logging.DebugFromEnv())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionnaire(cmd, a)
		},
	}

	// Disable default completion command
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log diagnostics to stderr")
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "Output format (dict, json, yaml, table)")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()

	code := exitCode(err)
	if code == 1 {
		errorf("%v", err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

// exitCode maps the result of a run to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return 1
	}
}

// helper functions for output

func success(msg string) {
	fmt.Printf("✓ %s\n", msg)
}

func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}
