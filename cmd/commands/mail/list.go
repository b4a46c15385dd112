package mail

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "mail list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list <domain>",
		Short:        "List mailboxes of a domain",
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

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	var mailboxes []domain.Record
	err = cmdutil.Spin(cmd, "Fetching mailboxes...", func() error {
		var err error
		mailboxes, err = svc.List(cmd.Context(), fqdn, cmdutil.ListOptions(cmd))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list mailboxes of %s: %w", fqdn, err)
	}

	return cmdutil.PrintRecords(cmd, mailboxes, mailboxColumns, "No mailboxes found.")
}
