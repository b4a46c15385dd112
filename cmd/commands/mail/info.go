package mail

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// InfoCommand returns the "mail info" subcommand.
func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info <login@domain>",
		Short:        "Show details of a mailbox",
		Args:         cobra.ExactArgs(1),
		RunE:         runInfo,
		SilenceUsage: true,
	}

	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	login, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	var info domain.Record
	err = cmdutil.Spin(cmd, "Fetching mailbox...", func() error {
		var err error
		info, err = svc.Info(cmd.Context(), fqdn, login)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to get mailbox %s: %w", args[0], err)
	}

	return cmdutil.PrintRecord(cmd, info, infoKeys, false)
}
