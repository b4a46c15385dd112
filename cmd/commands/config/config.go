package config

import (
	"github.com/grigouze/gandi.cli/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gandi configuration",
		Long: "View and modify persistent gandi settings.\n\n" +
			"Configuration is stored in gandi/config.yaml under the user config directory.\n" +
			"API keys are kept in the system keychain; use \"gandi auth\" to manage them.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
