package mail

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/services"
	"github.com/grigouze/gandi.cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "mail" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Manage mailboxes",
		Long: `Manage mailboxes of a domain.

A mailbox is addressed as login@domain.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(InfoCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(PurgeCommand())

	return cmd
}

var mailboxColumns = []output.Column{
	{Header: "LOGIN", Key: "login"},
	{Header: "ALIASES", Key: "aliases", Width: 60},
}

var infoKeys = []string{
	"login",
	"aliases",
	"quota",
	"fallback_email",
	"responder",
}

func newMailService(cmd *cobra.Command) (*services.MailService, error) {
	backend, err := cmdutil.Backend()
	if err != nil {
		return nil, err
	}
	return services.NewMailService(backend, backend, cmdutil.Sink(cmd)), nil
}

// readPassword prompts for a password on the terminal.
func readPassword(cmd *cobra.Command) (string, error) {
	if !tui.IsTerminal(os.Stdin) {
		return "", errors.New("a password is required: use --password")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter mailbox password: ")
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}

	password := strings.TrimSpace(string(bytes))
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}
