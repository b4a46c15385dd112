package domain

import (
	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the "domain" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage domain names",
		Long: `Manage domain names registered with Gandi.

Use this command group to list, inspect, register and renew domains.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(InfoCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(RenewCommand())
	cmd.AddCommand(AutorenewCommand())
	cmd.AddCommand(IDCommand())

	return cmd
}

var domainColumns = []output.Column{
	{Header: "FQDN", Key: "fqdn"},
	{Header: "STATUS", Key: "status", Width: 40},
	{Header: "EXPIRES", Key: "date_registry_end"},
}

var infoKeys = []string{
	"fqdn",
	"status",
	"nameservers",
	"date_created",
	"date_updated",
	"date_registry_end",
	"autorenew",
}

func newDomainService(cmd *cobra.Command) (*services.DomainService, error) {
	backend, err := cmdutil.Backend()
	if err != nil {
		return nil, err
	}
	return services.NewDomainService(backend, backend, cmdutil.Sink(cmd)), nil
}
