package mail

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// PurgeCommand returns the "mail purge" subcommand.
func PurgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge <login@domain>",
		Short: "Delete every message of a mailbox",
		Long: `Delete every message of a mailbox. The mailbox itself is kept.

Example:
  gandi mail purge alice@example.com --background`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPurge,
		SilenceUsage: true,
	}

	cmdutil.AddForceFlag(cmd)
	cmd.Flags().Bool("background", false, "Do not wait for the purge to complete")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runPurge(cmd *cobra.Command, args []string) error {
	login, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Purge every message of %s@%s?", login, fqdn)); err != nil {
		return err
	}
	background, _ := cmd.Flags().GetBool("background")

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	op, err := svc.Purge(cmd.Context(), fqdn, login, background)
	if err != nil {
		return fmt.Errorf("failed to purge mailbox %s: %w", args[0], err)
	}
	return cmdutil.PrintOperation(cmd, op)
}
