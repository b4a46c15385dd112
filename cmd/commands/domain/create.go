package domain

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/spf13/cobra"
)

// maxDuration is the longest registration or renewal period in years.
const maxDuration = 10

// CreateCommand returns the "domain create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <fqdn>",
		Short: "Register a domain",
		Long: `Register a domain name.

Contacts left empty default to the handle of the authenticated account.
Outside a terminal the command returns as soon as the registration is
accepted; use --background to get the same behavior in a terminal.

Examples:
  gandi domain create example.com
  gandi domain create example.com --duration 2 --nameserver ns1.example.net`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().Int("duration", 1, "Registration period in years (1-10)")
	cmd.Flags().String("owner", "", "Owner contact handle")
	cmd.Flags().String("admin", "", "Administrative contact handle")
	cmd.Flags().String("tech", "", "Technical contact handle")
	cmd.Flags().String("bill", "", "Billing contact handle")
	cmd.Flags().StringSlice("nameserver", nil, "Nameserver to delegate to (repeatable)")
	cmd.Flags().StringToString("extra", nil, "Registry-specific parameter as key=value (repeatable)")
	cmd.Flags().Bool("background", false, "Do not wait for the registration to complete")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	duration, _ := cmd.Flags().GetInt("duration")
	if err := validateDuration(duration); err != nil {
		return err
	}

	opts := services.CreateDomainOpts{FQDN: fqdn, Duration: duration}
	opts.Owner, _ = cmd.Flags().GetString("owner")
	opts.Admin, _ = cmd.Flags().GetString("admin")
	opts.Tech, _ = cmd.Flags().GetString("tech")
	opts.Bill, _ = cmd.Flags().GetString("bill")
	opts.Nameservers, _ = cmd.Flags().GetStringSlice("nameserver")
	opts.Extra, _ = cmd.Flags().GetStringToString("extra")
	opts.Background, _ = cmd.Flags().GetBool("background")

	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	op, err := svc.Create(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to create domain %s: %w", fqdn, err)
	}
	return cmdutil.PrintOperation(cmd, op)
}

func validateDuration(years int) error {
	if years < 1 || years > maxDuration {
		return fmt.Errorf("duration must be between 1 and %d years, got %d", maxDuration, years)
	}
	return nil
}
