package domain

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	model "github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// InfoCommand returns the "domain info" subcommand.
func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info <fqdn>",
		Short:        "Show details of a domain",
		Args:         cobra.ExactArgs(1),
		RunE:         runInfo,
		SilenceUsage: true,
	}

	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	var info model.Record
	err = cmdutil.Spin(cmd, "Fetching domain...", func() error {
		var err error
		info, err = svc.Info(cmd.Context(), fqdn)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to get domain %s: %w", fqdn, err)
	}

	return cmdutil.PrintRecord(cmd, info, infoKeys, false)
}
