package config

import (
	"fmt"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/util"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value. Without a key, every value is listed.\n" +
			"API keys are never printed, only whether they are set.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  gandi config get\n" +
			"  gandi config get api.handle",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	settings, err := cmdutil.Settings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, spec := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, display(settings.Get(spec.Name)))
		}
		for _, key := range config.SecretKeys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, secretDisplay(settings.Get(key)))
		}
		return nil
	}

	key := util.NormalizeKey(args[0])
	switch {
	case config.IsSecret(key):
		fmt.Fprintln(cmd.OutOrStdout(), secretDisplay(settings.Get(key)))
	case config.Lookup(key) != nil:
		value := settings.Get(key)
		if value == "" {
			value = "not set"
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	default:
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}
	return nil
}

func display(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func secretDisplay(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "(set)"
}
