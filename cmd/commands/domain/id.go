package domain

import (
	"fmt"

	"github.com/spf13/cobra"
)

// IDCommand returns the "domain id" subcommand.
func IDCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id <fqdn|id>",
		Short: "Print the id of a domain",
		Long: `Resolve a domain name to its provider id: a number with the legacy API,
a UUID with the REST API. Numeric input is printed without a lookup.

Example:
  gandi domain id example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runID,
		SilenceUsage: true,
	}

	return cmd
}

func runID(cmd *cobra.Command, args []string) error {
	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	id, err := svc.UsableID(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
