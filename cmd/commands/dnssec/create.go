package dnssec

import (
	"fmt"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "dnssec create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <fqdn>",
		Short: "Publish a DNSSEC key",
		Long: `Publish a DNSSEC key at the registry.

Examples:
  gandi dnssec create example.com --flags ksk --algorithm ECDSAP256SHA256 --public-key AwEAA...
  gandi dnssec create example.com --flags 256 --algorithm 13 --public-key AwEAA...`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("flags", "ksk", "Key flags: ksk (257), zsk (256) or a number")
	cmd.Flags().String("algorithm", "", "Key algorithm number or mnemonic (required)")
	cmd.Flags().String("public-key", "", "Base64 encoded public key")
	cmd.MarkFlagRequired("algorithm")
	cmdutil.AddOutputFlag(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	fqdn, err := cmdutil.ParseFQDN(args[0])
	if err != nil {
		return err
	}

	flagsValue, _ := cmd.Flags().GetString("flags")
	flags, err := parseFlags(flagsValue)
	if err != nil {
		return err
	}

	algorithmValue, _ := cmd.Flags().GetString("algorithm")
	algorithm, err := parseAlgorithm(algorithmValue)
	if err != nil {
		return err
	}

	publicKey, _ := cmd.Flags().GetString("public-key")

	svc, err := newDNSSECService()
	if err != nil {
		return err
	}

	key, err := svc.Create(cmd.Context(), fqdn, flags, algorithm, publicKey)
	if err != nil {
		return fmt.Errorf("failed to create key for %s: %w", fqdn, err)
	}
	return cmdutil.PrintRecord(cmd, key, []string{"id", "keytag", "flags", "algorithm"}, false)
}
