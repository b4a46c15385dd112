package mail

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "mail delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <login@domain>",
		Short:        "Delete a mailbox",
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmdutil.AddForceFlag(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	login, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Delete mailbox %s@%s? This action cannot be undone.", login, fqdn)); err != nil {
		return err
	}

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), fqdn, login); err != nil {
		return fmt.Errorf("failed to delete mailbox %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mailbox %s@%s deleted.\n", login, fqdn)
	return nil
}
