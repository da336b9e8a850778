package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/people-cli/internal/adapters/tui"
	"github.com/bnema/people-cli/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const uiLogFile = "people.log"

func newUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and add people interactively (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, app)
		},
	}
}

func runUI(cmd *cobra.Command, app *app) error {
	logger, err := app.uiLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return tui.Run(
		cmd.Context(),
		app.newController(logger),
		logger,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
}

// uiLogger keeps log lines off the alternate screen: without a configured
// log file the interactive view logs to people.log in the config directory.
func (a *app) uiLogger() (*zap.Logger, error) {
	if a.settings.Log.File != "" {
		return a.logger, nil
	}

	if err := os.MkdirAll(a.configDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	settings := a.settings.Log
	settings.File = filepath.Join(a.configDir, uiLogFile)

	logger, err := logging.New(settings)
	if err != nil {
		return nil, fmt.Errorf("wire ui logger: %w", err)
	}

	return logger, nil
}
