package auth

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/config"

	"github.com/spf13/cobra"
)

// LogoutCommand returns the "auth logout" subcommand.
func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove a stored API key",
		Long: `Remove an API key from the local keychain.

Keys provided through GANDI_API_KEY or GANDI_APIREST_KEY are not affected.

Examples:
  gandi auth logout --rest
  gandi auth logout --all`,
		Args:         cobra.NoArgs,
		RunE:         runLogout,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("rest", false, "Remove the REST API key instead of the legacy one")
	cmd.Flags().Bool("all", false, "Remove every stored key")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	keys := []string{keyName(cmd)}
	if all, _ := cmd.Flags().GetBool("all"); all {
		keys = config.SecretKeys()
	}

	settings, err := cmdutil.Settings()
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := settings.Set(key, ""); err != nil {
			return fmt.Errorf("failed to remove %s: %w", keyLabel(key), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", keyLabel(key))
	}
	return nil
}
