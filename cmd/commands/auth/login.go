package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// LoginCommand returns the "auth login" subcommand.
func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long: `Store an API key in the local keychain.

Examples:
  gandi auth login
  gandi auth login --rest`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("rest", false, "Store the REST API key instead of the legacy one")
	cmd.Flags().String("key", "", "API key (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	name := keyName(cmd)

	key, _ := cmd.Flags().GetString("key")
	key = strings.TrimSpace(key)
	if key == "" {
		if !tui.IsTerminal(os.Stdin) {
			return errors.New("no terminal to prompt on: use --key")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enter %s: ", keyLabel(name))
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		key = strings.TrimSpace(string(bytes))
	}

	if key == "" {
		return errors.New("key cannot be empty")
	}

	settings, err := cmdutil.Settings()
	if err != nil {
		return err
	}
	if err := settings.Set(name, key); err != nil {
		return fmt.Errorf("failed to store %s: %w", keyLabel(name), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", keyLabel(name))
	return nil
}
