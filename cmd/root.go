// Package cmd implements enchive-go's command-line surface: parsing,
// usage/help text, and version reporting, all treated as external
// collaborators around the orchestrator package that does the real work.
package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	logger "github.com/PolarWolf314/enchive-go/internal/logging"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	verbose bool
	debug   bool

	pubKeyPath string
	secKeyPath string

	agentArg string
	noAgent  bool

	// Logger is shared by every subcommand, initialized from the
	// persistent --verbose/--debug flags in RootCmd's PersistentPreRun.
	Logger logger.Logger
)

// RootCmd is the top-level enchive-go command.
var RootCmd = &cobra.Command{
	Use:     "enchive",
	Version: version,
	Short:   "Encrypt files for archival storage under a personal key pair",
	Long: `enchive is a small archival-encryption tool.

A file is "archived" (encrypted) to a public key that never needs a
passphrase, and later "extracted" (decrypted) with the matching secret
key, which is itself protected on disk by a passphrase. A co-operating
key agent can cache the derived protection key so a session doesn't
re-prompt on every extract.

Usage:
  enchive <command> [flags]

Available Commands:
  keygen        Generate a new key pair
  fingerprint   Print the public key's fingerprint
  archive       Encrypt a file for the owner of the public key
  extract       Decrypt a file with the secret key

Run 'enchive help <command>' for more details on a specific command.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
		Logger.Debugf("enchive starting: verbose=%t debug=%t", verbose, debug)
	},
}

func init() {
	// Commands may be abbreviated unambiguously (spec §6): "enchive arch"
	// runs "archive", and a prefix matching more than one command name
	// matches none of them, so Cobra reports it as an unknown command.
	cobra.EnablePrefixMatching = true

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.PersistentFlags().StringVarP(&pubKeyPath, "pubkey", "p", "", "public key file (default $XDG_CONFIG_HOME/enchive/enchive.pub)")
	RootCmd.PersistentFlags().StringVarP(&secKeyPath, "seckey", "s", "", "secret key file (default $XDG_CONFIG_HOME/enchive/enchive.sec)")

	RootCmd.PersistentFlags().StringVarP(&agentArg, "agent", "a", "", "key agent inactivity timeout in seconds (bare --agent uses the default)")
	RootCmd.PersistentFlags().Lookup("agent").NoOptDefVal = " "
	RootCmd.PersistentFlags().BoolVarP(&noAgent, "no-agent", "A", false, "never consult or spawn a key agent")

	RootCmd.SetVersionTemplate("enchive {{.Version}}\n")

	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(fingerprintCmd)
	RootCmd.AddCommand(archiveCmd)
	RootCmd.AddCommand(extractCmd)
	RootCmd.AddCommand(agentCmd)
}

// defaultAgentTimeoutSeconds is the agent's inactivity timeout when
// --agent is not given.
const defaultAgentTimeoutSeconds = 900

// agentTimeout resolves the --agent/--no-agent flags into a duration; zero
// disables the agent entirely. --agent takes an optional argument: given
// bare it means "use the default timeout", given with a value it overrides
// the timeout in seconds.
func agentTimeout() (time.Duration, error) {
	if noAgent {
		return 0, nil
	}

	seconds := defaultAgentTimeoutSeconds
	if arg := strings.TrimSpace(agentArg); RootCmd.PersistentFlags().Changed("agent") && arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, fmt.Errorf("%w: --agent argument must be an integer, got %q", apperrors.ErrBadArgument, arg)
		}
		seconds = n
	}
	return time.Duration(seconds) * time.Second, nil
}
