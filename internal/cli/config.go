package cli

import (
	"fmt"

	"github.com/morrisclay/stack-builder/internal/config"
	"github.com/morrisclay/stack-builder/internal/render"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var outputFormat string
	var show, asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or update CLI configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show config if --show or no flags
			if show || outputFormat == "" {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}

				if asJSON {
					return outputJSON(cmd.OutOrStdout(), cfg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "output_format: %s\n", cfg.OutputFormat)
				return nil
			}

			if err := render.CheckFormat(outputFormat); err != nil {
				return err
			}
			if err := config.SetOutputFormat(outputFormat); err != nil {
				return fmt.Errorf("failed to set output format: %w", err)
			}
			success(fmt.Sprintf("Output format set to %s", outputFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output", "", "Set default output format (dict, json, yaml, table)")
	cmd.Flags().BoolVar(&show, "show", false, "Show current configuration")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Show configuration as JSON")

	return cmd
}
