package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/grigouze/gandi.cli/cmd/commands/cmdutil"
	"github.com/grigouze/gandi.cli/internal/config"
	"github.com/grigouze/gandi.cli/internal/output"
	"github.com/grigouze/gandi.cli/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value clears the key.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  gandi config set output json\n" +
			"  gandi config set api.host https://rpc.ote.gandi.net/xmlrpc/",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

// validators normalize and check a value before it is saved. Keys not
// present in this map are stored as given.
var validators = map[string]func(value string) (string, error){
	"output":       validateOutput,
	"api.host":     validateURL,
	"apirest.host": validateURL,
}

func runSet(cmd *cobra.Command, args []string) error {
	key := util.NormalizeKey(args[0])
	value := strings.TrimSpace(args[1])

	if config.IsSecret(key) {
		return fmt.Errorf("%s is stored in the keychain: use \"gandi auth login\"", key)
	}
	spec := config.Lookup(key)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	if validate, ok := validators[spec.Name]; ok && value != "" {
		normalized, err := validate(value)
		if err != nil {
			return err
		}
		value = normalized
	}

	settings, err := cmdutil.Settings()
	if err != nil {
		return err
	}
	if err := settings.Set(spec.Name, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
	return nil
}

func validateOutput(value string) (string, error) {
	format, err := output.ParseFormat(value)
	if err != nil {
		return "", err
	}
	return string(format), nil
}

func validateURL(value string) (string, error) {
	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("invalid endpoint %q: expected an http(s) URL", value)
	}
	return value, nil
}
