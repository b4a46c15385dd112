package dnssec

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "dnssec delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <fqdn> <key-id>",
		Short:        "Remove a DNSSEC key",
		Args:         cobra.ExactArgs(2),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmdutil.AddForceFlag(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}
	keyID := args[1]

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Remove key %s from %s?", keyID, fqdn)); err != nil {
		return err
	}

	svc, err := newDNSSECService()
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), fqdn, keyID); err != nil {
		return fmt.Errorf("failed to delete key %s of %s: %w", keyID, fqdn, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Key %s removed from %s.\n", keyID, fqdn)
	return nil
}
