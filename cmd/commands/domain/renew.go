package domain

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// RenewCommand returns the "domain renew" subcommand.
func RenewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renew <fqdn>",
		Short: "Renew a domain",
		Long: `Renew a domain for the given number of years.

Example:
  gandi domain renew example.com --duration 2`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRenew,
		SilenceUsage: true,
	}

	cmd.Flags().Int("duration", 1, "Renewal period in years (1-10)")
	cmd.Flags().Bool("background", false, "Do not wait for the renewal to complete")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runRenew(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	duration, _ := cmd.Flags().GetInt("duration")
	if err := validateDuration(duration); err != nil {
		return err
	}
	background, _ := cmd.Flags().GetBool("background")

	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	op, err := svc.Renew(cmd.Context(), fqdn, duration, background)
	if err != nil {
		return fmt.Errorf("failed to renew domain %s: %w", fqdn, err)
	}
	return cmdutil.PrintOperation(cmd, op)
}
