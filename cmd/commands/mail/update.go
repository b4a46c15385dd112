package mail

import (
	"errors"
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/domain"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "mail update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <login@domain>",
		Short: "Update a mailbox and its aliases",
		Long: `Update mailbox options and add or remove aliases.

Examples:
  gandi mail update alice@example.com --quota 2048
  gandi mail update alice@example.com --alias-add ali --alias-remove al
  gandi mail update alice@example.com --change-password`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("password", "", "New mailbox password")
	cmd.Flags().Bool("change-password", false, "Prompt for a new password")
	cmd.Flags().Int("quota", 0, "New quota in MB")
	cmd.Flags().String("fallback", "", "New fallback address")
	cmd.Flags().StringSlice("alias-add", nil, "Alias to add (repeatable)")
	cmd.Flags().StringSlice("alias-remove", nil, "Alias to remove (repeatable)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	login, fqdn, err := cmdutil.ParseAddress(args[0])
	if err != nil {
		return err
	}

	var opts domain.MailboxOpts
	opts.Password, _ = cmd.Flags().GetString("password")
	opts.Quota, _ = cmd.Flags().GetInt("quota")
	opts.Fallback, _ = cmd.Flags().GetString("fallback")
	aliasAdd, _ := cmd.Flags().GetStringSlice("alias-add")
	aliasDel, _ := cmd.Flags().GetStringSlice("alias-remove")

	if prompt, _ := cmd.Flags().GetBool("change-password"); prompt && opts.Password == "" {
		if opts.Password, err = readPassword(cmd); err != nil {
			return err
		}
	}

	if opts.IsEmpty() && len(aliasAdd) == 0 && len(aliasDel) == 0 {
		return errors.New("nothing to update")
	}

	svc, err := newMailService(cmd)
	if err != nil {
		return err
	}

	if _, err := svc.Update(cmd.Context(), fqdn, login, opts, aliasAdd, aliasDel); err != nil {
		return fmt.Errorf("failed to update mailbox %s: %w", args[0], err)
	}
	return nil
}
