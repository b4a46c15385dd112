package account

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the "account" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show account information",
	}

	cmd.AddCommand(InfoCommand())

	return cmd
}

var infoKeys = []string{
	"handle",
	"id",
	"credit",
	"prepaid",
	"prepaid_info",
	"annual_balance",
	"outstanding_amount",
}

// InfoCommand returns the "account info" subcommand.
func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show account and billing information",
		Long: `Show account and billing information.

With the REST API, --sharing-id selects the organization to report on.`,
		Args:         cobra.NoArgs,
		RunE:         runInfo,
		SilenceUsage: true,
	}

	cmd.Flags().String("sharing-id", "", "Organization to report on")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	sharingID, _ := cmd.Flags().GetString("sharing-id")

	backend, err := cmdutil.Backend()
	if err != nil {
		return err
	}
	svc := services.NewAccountService(backend)

	var info domain.Record
	err = cmdutil.Spin(cmd, "Fetching account...", func() error {
		var err error
		info, err = svc.Info(cmd.Context(), sharingID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to get account information: %w", err)
	}

	return cmdutil.PrintRecord(cmd, info, infoKeys, true)
}
