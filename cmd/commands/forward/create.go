package forward

import (
	"errors"
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "forward create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <source@domain>",
		Short: "Create a mail forward",
		Long: `Create a mail forward.

Example:
  gandi forward create contact@example.com -d alice@example.net -d bob@example.net`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().StringSliceP("destination", "d", nil, "Destination address (repeatable, required)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	source, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	destinations, _ := cmd.Flags().GetStringSlice("destination")
	if len(destinations) == 0 {
		return errors.New("at least one --destination is required")
	}

	svc, err := newForwardService(cmd)
	if err != nil {
		return err
	}

	if _, err := svc.Create(cmd.Context(), fqdn, source, destinations); err != nil {
		return fmt.Errorf("failed to create forward %s: %w", args[0], err)
	}
	return nil
}
