package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/account"
	"github.com/grigouze/gandi.cli/cmd/commands/auth"
	cfgcmd "github.com/grigouze/gandi.cli/cmd/commands/config"
	"github.com/grigouze/gandi.cli/cmd/commands/dnssec"
	"github.com/grigouze/gandi.cli/cmd/commands/domain"
	"github.com/grigouze/gandi.cli/cmd/commands/forward"
	"github.com/grigouze/gandi.cli/cmd/commands/mail"
	"github.com/grigouze/gandi.cli/cmd/commands/operation"
	"github.com/grigouze/gandi.cli/cmd/commands/vlan"
	"github.com/grigouze/gandi.cli/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "gandi",
		Short: "A command-line client for the Gandi hosting API",
		Long: `gandi manages domains, mail forwards, mailboxes, DNSSEC keys, VLANs and
account information through the Gandi API.

The legacy XML-RPC API is used by default. Once a REST API key is
configured, the REST API is used instead.

Quick start:
  gandi auth login                 # Store your legacy API key
  gandi auth login --rest          # Or store a REST API key
  gandi domain list                # List your domains
  gandi mail list example.com      # List mailboxes of a domain
  gandi operation wait <id>        # Wait for a background operation`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			format, _ := cmd.Flags().GetString("log-format")
			logger, err := setupLogger(cmd.ErrOrStderr(), verbose, format)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log API requests to stderr")
	cmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(domain.NewCommand())
	cmd.AddCommand(forward.NewCommand())
	cmd.AddCommand(mail.NewCommand())
	cmd.AddCommand(dnssec.NewCommand())
	cmd.AddCommand(vlan.NewCommand())
	cmd.AddCommand(account.NewCommand())
	cmd.AddCommand(operation.NewCommand())

	return cmd
}

// setupLogger builds the process logger. Without --verbose only warnings
// and errors are logged.
func setupLogger(w io.Writer, verbose bool, format string) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q (valid: text, json)", format)
	}

	return slog.New(handler), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterDefaults()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
