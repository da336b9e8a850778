package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "people",
		Short:         "people: browse and add entries in the people API",
		Long:          "people lists the entries of the people REST API and adds new ones, either interactively or as one-shot commands.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
	)

	app, err := wireApp()
	if err != nil {
		// Keep the commands discoverable; each reports why wiring failed.
		failed := func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.RunE = failed
		for _, cmd := range newAppCmds(nil) {
			cmd.RunE = failed
			rootCmd.AddCommand(cmd)
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runUI(cmd, app)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}
	rootCmd.AddCommand(newAppCmds(app)...)

	return rootCmd
}

func newAppCmds(app *app) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(app),
		newAddCmd(app),
		newUICmd(app),
	}
}
