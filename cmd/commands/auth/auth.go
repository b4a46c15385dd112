package auth

import (
	"github.com/grigouze/gandi.cli/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "auth" command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Gandi API keys",
		Long: `Manage the Gandi API keys stored in the system keychain.

Two keys are supported: the legacy XML-RPC key (api.key) and the REST key
(apirest.key). When a REST key is configured, the REST API is used.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}

// keyName returns the secret selected by the --rest flag.
func keyName(cmd *cobra.Command) string {
	if rest, _ := cmd.Flags().GetBool("rest"); rest {
		return config.KeyAPIRestKey
	}
	return config.KeyAPIKey
}

func keyLabel(key string) string {
	if key == config.KeyAPIRestKey {
		return "REST API key"
	}
	return "legacy API key"
}
