package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/services/auth"
	"github.com/grigouze/gandi.cli/internal/transport"
	"github.com/grigouze/gandi.cli/internal/tui"
	"github.com/grigouze/gandi.cli/internal/tui/styles"

	"github.com/spf13/cobra"
)

// StatusCommand returns the "auth status" subcommand.
func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which API keys are configured",
		Long: `Show which API keys are configured, where they come from and which
API will be used.

Example:
  gandi auth status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := cmdutil.Settings()
	if err != nil {
		return err
	}
	store := auth.DefaultStore()
	styled := tui.IsTerminal(cmd.OutOrStdout())

	for _, key := range config.SecretKeys() {
		var status string
		ok := false
		if env := config.SecretEnv(key); os.Getenv(env) != "" {
			status, ok = "set from "+env, true
		} else {
			_, err := store.GetToken(key)
			switch {
			case err == nil:
				status, ok = "stored in keychain", true
			case errors.Is(err, auth.ErrTokenNotFound):
				status = "not set"
			default:
				status = fmt.Sprintf("error (%v)", err)
			}
		}

		if styled {
			style := styles.MutedText
			if ok {
				style = styles.SuccessText
			}
			status = style.Render(status)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, status)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "transport: %s\n", transport.Select(settings))
	return nil
}
