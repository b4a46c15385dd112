package mail

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "mail create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <login@domain>",
		Short: "Create a mailbox",
		Long: `Create a mailbox. The password is prompted for when --password is not
given and a terminal is attached.

Example:
  gandi mail create alice@example.com --alias ali --quota 1024`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("password", "", "Mailbox password")
	cmd.Flags().Int("quota", 0, "Quota in MB (0 for the default)")
	cmd.Flags().String("fallback", "", "Fallback address used when the mailbox is full")
	cmd.Flags().StringSlice("alias", nil, "Alias to attach to the mailbox (repeatable)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	login, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	var opts domain.MailboxOpts
	opts.Password, _ = cmd.Flags().GetString("password")
	opts.Quota, _ = cmd.Flags().GetInt("quota")
	opts.Fallback, _ = cmd.Flags().GetString("fallback")
	aliases, _ := cmd.Flags().GetStringSlice("alias")

	if opts.Password == "" {
		if opts.Password, err = readPassword(cmd); err != nil {
			return err
		}
	}

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	if _, err := svc.Create(cmd.Context(), fqdn, login, opts, aliases); err != nil {
		return fmt.Errorf("failed to create mailbox %s: %w", args[0], err)
	}
	return nil
}
