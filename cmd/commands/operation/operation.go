// Package operation implements the "gandi operation" commands, which report
// on asynchronous jobs started with --background.
package operation

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewCommand returns the "operation" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operation",
		Aliases: []string{"op"},
		Short:   "Inspect asynchronous operations",
		Long: `Inspect the asynchronous operations started with --background.

Only the legacy API returns operation ids; REST operations complete
without one.`,
	}

	cmd.AddCommand(InfoCommand())
	cmd.AddCommand(WaitCommand())

	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid operation id %q", s)
	}
	return id, nil
}
