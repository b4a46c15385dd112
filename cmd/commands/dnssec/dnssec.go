package dnssec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/services"

	"github.com/miekg/dns"
	"github.com/spf13/cobra"
)

// NewCommand returns the "dnssec" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnssec",
		Short: "Manage DNSSEC keys",
		Long:  `Manage the DNSSEC keys published at the registry for a domain.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

var keyColumns = []output.Column{
	{Header: "ID", Key: "id"},
	{Header: "KEYTAG", Key: "keytag"},
	{Header: "FLAGS", Key: "flags"},
	{Header: "ALGORITHM", Key: "algorithm"},
	{Header: "PUBLIC KEY", Key: "public_key", Width: 40},
}

func newDNSSECService() (*services.DNSSECService, error) {
	backend, err := cmdutil.Backend()
	if err != nil {
		return nil, err
	}
	return services.NewDNSSECService(backend), nil
}

// parseFlags accepts "ksk", "zsk" or a numeric flags value.
func parseFlags(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ksk":
		return services.FlagsKSK, nil
	case "zsk":
		return services.FlagsZSK, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid key flags %q (valid: ksk, zsk, 256, 257)", s)
	}
	return n, nil
}

// parseAlgorithm accepts a DNSSEC algorithm number or mnemonic such as
// ECDSAP256SHA256.
func parseAlgorithm(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if alg, ok := dns.StringToAlgorithm[strings.ToUpper(s)]; ok {
		return int(alg), nil
	}
	return 0, fmt.Errorf("unknown key algorithm %q", s)
}
