// Package cmdutil holds the helpers shared by the gandi subcommands.
package cmdutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/providers"
	"github.com/grigouze/gandi.cli/internal/services/auth"
	"github.com/grigouze/gandi.cli/internal/tui"
	"github.com/grigouze/gandi.cli/internal/util"

	"github.com/spf13/cobra"
)

// ErrConfirmationRequired is returned by destructive commands run outside a
// terminal without --force.
var ErrConfirmationRequired = errors.New("refusing to continue without confirmation (use --force)")

// Settings opens the configuration layered over the OS keychain.
func Settings() (*config.Settings, error) {
	settings, err := config.Open(auth.DefaultStore())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// Backend returns the backend for the transport selected by the settings.
func Backend() (domain.Backend, error) {
	settings, err := Settings()
	if err != nil {
		return nil, err
	}

	backend, err := providers.New(settings, providers.Options{Logger: slog.Default()})
	if err != nil {
		return nil, err
	}
	slog.Debug("backend selected", slog.String("transport", backend.Name()))
	return backend, nil
}

// Sink returns the message sink writing to the command's stdout.
func Sink(cmd *cobra.Command) *tui.Sink {
	return tui.NewSink(cmd.OutOrStdout())
}

// Spin runs action behind a spinner on stderr when it is a terminal.
func Spin(cmd *cobra.Command, title string, action func() error) error {
	return tui.Spin(cmd.ErrOrStderr(), title, action)
}

// --- Flags ---

// AddOutputFlag registers the -o/--output flag on a read command.
func AddOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output format: table or json (default from config)")
}

// AddListFlags registers the pagination flags of list commands.
func AddListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 100, "Number of items per page")
	cmd.Flags().Int("page", 0, "Page number, starting at 0")
}

// ListOptions reads the pagination flags.
func ListOptions(cmd *cobra.Command) domain.ListOptions {
	limit, _ := cmd.Flags().GetInt("limit")
	page, _ := cmd.Flags().GetInt("page")
	return domain.ListOptions{PerPage: limit, Page: page}
}

// AddForceFlag registers --force on a destructive command.
func AddForceFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false, "Do not ask for confirmation")
}

// OutputFormat resolves the output format from the flag, falling back to
// the "output" configuration key.
func OutputFormat(cmd *cobra.Command) (output.Format, error) {
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		return output.ParseFormat(f.Value.String())
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return output.ParseFormat(cfg.Output)
}

// --- Printing ---

// PrintRecords prints a list either as JSON or as a table. An empty table
// prints emptyMsg instead.
func PrintRecords(cmd *cobra.Command, records []domain.Record, columns []output.Column, emptyMsg string) error {
	format, err := OutputFormat(cmd)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		if records == nil {
			records = []domain.Record{}
		}
		return output.JSON(cmd.OutOrStdout(), records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), emptyMsg)
		return nil
	}
	return output.Table(cmd.OutOrStdout(), records, columns)
}

// PrintRecord prints a single record either as JSON or as key/value lines.
func PrintRecord(cmd *cobra.Command, rec domain.Record, keys []string, only bool) error {
	format, err := OutputFormat(cmd)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), rec)
	}
	return output.Detail(cmd.OutOrStdout(), rec, keys, only)
}

// PrintOperation reports an operation returned in background mode.
func PrintOperation(cmd *cobra.Command, op *domain.Operation) error {
	if op == nil {
		return nil
	}

	format, err := OutputFormat(cmd)
	if err != nil {
		return err
	}

	if format == output.FormatJSON {
		if op.Raw != nil {
			return output.JSON(cmd.OutOrStdout(), op.Raw)
		}
		return output.JSON(cmd.OutOrStdout(), domain.Record{"id": op.ID, "step": op.Step, "message": op.Message})
	}

	if !op.Trackable() {
		fmt.Fprintln(cmd.OutOrStdout(), op.Message)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Operation %d accepted (step: %s)\n", op.ID, strings.ToLower(op.Step))
	return nil
}

// --- Prompts ---

// Confirm asks before a destructive action. --force skips the prompt; a
// non-interactive session without --force is refused.
func Confirm(cmd *cobra.Command, title string) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	if !tui.IsTerminal(cmd.OutOrStdout()) || !tui.IsTerminal(os.Stdin) {
		return ErrConfirmationRequired
	}

	ok, err := tui.Confirm(title, "Yes, delete")
	if err != nil {
		return err
	}
	if !ok {
		return tui.ErrAborted
	}
	return nil
}

// --- Arguments ---

// ParseAddress splits an e-mail address into its local part and domain.
func ParseAddress(address string) (login, fqdn string, err error) {
	address = strings.TrimSpace(address)
	at := strings.LastIndex(address, "@")
	if at <= 0 || at == len(address)-1 {
		return "", "", fmt.Errorf("invalid address %q: expected login@domain", address)
	}

	login, fqdn = address[:at], util.NormalizeFQDN(address[at+1:])
	if err := util.ValidateFQDN(fqdn); err != nil {
		return "", "", fmt.Errorf("invalid address %q: %w", address, err)
	}
	return login, fqdn, nil
}

// ParseFQDN validates and lowercases a domain name argument.
func ParseFQDN(s string) (string, error) {
	fqdn := util.NormalizeFQDN(s)
	if err := util.ValidateFQDN(fqdn); err != nil {
		return "", err
	}
	return fqdn, nil
}
