package domain

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	model "github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "domain list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered domains",
		Long: `List the domains of the account.

Examples:
  gandi domain list
  gandi domain list --limit 500 -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmdutil.AddListFlags(cmd)
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	var domains []model.Record
	err = cmdutil.Spin(cmd, "Fetching domains...", func() error {
		var err error
		domains, err = svc.List(cmd.Context(), cmdutil.ListOptions(cmd))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	return cmdutil.PrintRecords(cmd, domains, domainColumns, "No domains found.")
}
