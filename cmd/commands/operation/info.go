package operation

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

var infoKeys = []string{"id", "step", "type", "date_created", "date_updated"}

// InfoCommand returns the "operation info" subcommand.
func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <id>",
		Short: "Show the current step of an operation",
		Long: `Query the provider for the current step of an operation.

Example:
  gandi operation info 1234567`,
		Args:         cobra.ExactArgs(1),
		RunE:         runInfo,
		SilenceUsage: true,
	}

	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := cmdutil.Backend()
	if err != nil {
		return err
	}

	var op *domain.Operation
	err = cmdutil.Spin(cmd, "Fetching operation...", func() error {
		var err error
		op, err = backend.OperationInfo(cmd.Context(), id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fetch operation %d: %w", id, err)
	}

	rec := op.Raw.Clone()
	rec["id"] = id
	rec["step"] = op.Step
	return cmdutil.PrintRecord(cmd, rec, infoKeys, false)
}
