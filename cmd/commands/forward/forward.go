package forward

import (
	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/spf13/cobra"
)

// NewCommand returns the "forward" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Manage mail forwards",
		Long: `Manage mail forwards of a domain.

A forward is addressed as source@domain and redirects mail to one or
more destination addresses.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

var forwardColumns = []output.Column{
	{Header: "SOURCE", Key: "source"},
	{Header: "DESTINATIONS", Key: "destinations", Width: 80},
}

func newForwardService(cmd *cobra.Command) (*services.ForwardService, error) {
	backend, err := cmdutil.Backend()
	if err != nil {
		return nil, err
	}
	return services.NewForwardService(backend, cmdutil.Sink(cmd)), nil
}
