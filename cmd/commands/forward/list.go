package forward

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "forward list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List mail forwards of a domain",
		Long: `List mail forwards of a domain.

Example:
  gandi forward list example.com`,
		Args:         cobra.ExactArgs(1),
		RunE:         runList,
		SilenceUsage: true,
	}

	cmdutil.AddListFlags(cmd)
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	svc, err := newForwardService(cmd)
	if err != nil {
		return err
	}

	var forwards []domain.Record
	err = cmdutil.Spin(cmd, "Fetching forwards...", func() error {
		var err error
		forwards, err = svc.List(cmd.Context(), fqdn, cmdutil.ListOptions(cmd))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list forwards of %s: %w", fqdn, err)
	}

	return cmdutil.PrintRecords(cmd, forwards, forwardColumns, "No forwards found.")
}
