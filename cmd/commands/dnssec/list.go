package dnssec

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "dnssec list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list <fqdn>",
		Short:        "List DNSSEC keys of a domain",
		Args:         cobra.ExactArgs(1),
		RunE:         runList,
		SilenceUsage: true,
	}

	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	svc, err := newDNSSECService()
	if err != nil {
		return err
	}

	var keys []domain.Record
	err = cmdutil.Spin(cmd, "Fetching keys...", func() error {
		var err error
		keys, err = svc.List(cmd.Context(), fqdn)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list keys of %s: %w", fqdn, err)
	}

	return cmdutil.PrintRecords(cmd, keys, keyColumns, "No keys found.")
}
