package forward

import (
	"errors"
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "forward update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <source@domain>",
		Short: "Add or remove destinations of a mail forward",
		Long: `Add or remove destinations of a mail forward.

Destinations already present are not added twice, and the forward is left
untouched when the resulting set is the same.

Example:
  gandi forward update contact@example.com -a carol@example.net -r bob@example.net`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().StringSliceP("add", "a", nil, "Destination to add (repeatable)")
	cmd.Flags().StringSliceP("remove", "r", nil, "Destination to remove (repeatable)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	source, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	add, _ := cmd.Flags().GetStringSlice("add")
	remove, _ := cmd.Flags().GetStringSlice("remove")
	if len(add) == 0 && len(remove) == 0 {
		return errors.New("nothing to update: use --add or --remove")
	}

	svc, err := newForwardService(cmd)
	if err != nil {
		return err
	}

	rec, err := svc.Update(cmd.Context(), fqdn, source, add, remove)
	if err != nil {
		return fmt.Errorf("failed to update forward %s: %w", args[0], err)
	}
	if rec == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Forward %s is already up to date.\n", args[0])
	}
	return nil
}
