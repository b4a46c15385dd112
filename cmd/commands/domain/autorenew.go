package domain

import (
	"fmt"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// AutorenewCommand returns the "domain autorenew" subcommand.
func AutorenewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autorenew <fqdn> <on|off>",
		Short: "Enable or disable automatic renewal",
		Long: `Enable or disable automatic renewal of a domain.

Example:
  gandi domain autorenew example.com on`,
		Args:         cobra.ExactArgs(2),
		RunE:         runAutorenew,
		SilenceUsage: true,
	}

	return cmd
}

func runAutorenew(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	var enabled bool
	switch strings.ToLower(args[1]) {
	case "on", "enable", "true":
		enabled = true
	case "off", "disable", "false":
		enabled = false
	default:
		return fmt.Errorf("invalid autorenew state %q (valid: on, off)", args[1])
	}

	svc, err := newDomainService(cmd)
	if err != nil {
		return err
	}

	if _, err := svc.SetAutorenew(cmd.Context(), fqdn, enabled); err != nil {
		return fmt.Errorf("failed to update autorenew for %s: %w", fqdn, err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Autorenew %s for %s\n", state, fqdn)
	return nil
}
