package cmd

import "github.com/spf13/cobra"

func newAddCmd(app *app) *cobra.Command {
	var (
		name   string
		age    float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person, then display the refreshed list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := app.outputFormat(output)
			if err != nil {
				return err
			}

			controller := app.newController(app.logger)
			if err := drainController(cmd, controller, controller.AddPerson(name, age), format, "Adding person..."); err != nil {
				return err
			}

			return writePeopleOutput(cmd, app, controller, format)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the person")
	cmd.Flags().Float64Var(&age, "age", 0, "Age of the person")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: table, json or toml (default from settings)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}
