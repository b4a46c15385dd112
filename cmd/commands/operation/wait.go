package operation

import (
	"errors"
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// WaitCommand returns the "operation wait" subcommand.
func WaitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait <id>...",
		Short: "Wait for operations to complete",
		Long: `Wait for each operation to reach a final step, one after the other.

The command fails if any operation ends in error or is cancelled.

Example:
  gandi operation wait 1234567 1234568`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runWait,
		SilenceUsage: true,
	}

	return cmd
}

func runWait(cmd *cobra.Command, args []string) error {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	backend, err := cmdutil.Backend()
	if err != nil {
		return err
	}
	sink := cmdutil.Sink(cmd)

	var errs []error
	for _, id := range ids {
		err := sink.Progress(cmd.Context(), &domain.Operation{ID: id}, backend.OperationInfo)
		if err != nil {
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Operation %d completed.\n", id)
	}
	return errors.Join(errs...)
}
