package forward

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "forward delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <source@domain>",
		Short:        "Delete a mail forward",
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}

	cmdutil.AddForceFlag(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	source, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	if err := cmdutil.Confirm(cmd, fmt.Sprintf("Delete forward %s@%s?", source, fqdn)); err != nil {
		return err
	}

	svc, err := newForwardService(cmd)
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), fqdn, source); err != nil {
		return fmt.Errorf("failed to delete forward %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Forward %s@%s deleted.\n", source, fqdn)
	return nil
}
