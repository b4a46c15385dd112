package vlan

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the "vlan" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlan",
		Short: "Manage hosting VLANs",
	}

	cmd.AddCommand(ListCommand())

	return cmd
}

var vlanColumns = []output.Column{
	{Header: "NAME", Key: "name"},
	{Header: "ID", Key: "id"},
	{Header: "STATE", Key: "state"},
	{Header: "DATACENTER", Key: "datacenter"},
	{Header: "SUBNET", Key: "subnet"},
	{Header: "GATEWAY", Key: "gateway"},
}

// ListCommand returns the "vlan list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List VLANs",
		Long: `List hosting VLANs, optionally restricted to one datacenter.

The datacenter may be given by id, code (FR-SD2), country code (FR) or name.

Example:
  gandi vlan list --datacenter FR-SD2`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().String("datacenter", "", "Only list VLANs of this datacenter")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	datacenter, _ := cmd.Flags().GetString("datacenter")

	backend, err := cmdutil.Backend()
	if err != nil {
		return err
	}
	svc := services.NewVLANService(backend)

	var vlans []domain.Record
	err = cmdutil.Spin(cmd, "Fetching VLANs...", func() error {
		var err error
		vlans, err = svc.List(cmd.Context(), datacenter)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to list vlans: %w", err)
	}

	return cmdutil.PrintRecords(cmd, vlans, vlanColumns, "No VLANs found.")
}
