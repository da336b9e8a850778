package cmd

import (
	"context"

	"github.com/bnema/people-cli/internal/application"
	"github.com/bnema/people-cli/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Fetch and display all people",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := app.outputFormat(output)
			if err != nil {
				return err
			}

			controller := app.newController(app.logger)
			if err := drainController(cmd, controller, controller.Initialize(), format, "Fetching people..."); err != nil {
				return err
			}

			return writePeopleOutput(cmd, app, controller, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, json or toml (default from settings)")

	return cmd
}

// drainController runs cmd and its follow-ups to completion. Table output
// shows a spinner on stderr while requests are in flight.
func drainController(cmd *cobra.Command, controller *application.Controller, command application.Command, format string, label string) error {
	if format != config.OutputTable {
		application.Drain(cmd.Context(), controller, command)
		return nil
	}

	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) {
		application.Drain(ctx, controller, command)
	})
}
