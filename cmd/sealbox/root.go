package main

import (
	"github.com/absfs/sealbox/internal/logging"
	"github.com/spf13/cobra"
)

// PassphraseEnvVar supplies the passphrase without a terminal prompt
const PassphraseEnvVar = "SEALBOX_PASSPHRASE"

// cli carries flag values and the logger shared by all subcommands
type cli struct {
	verbose bool
	debug   bool
	log     logging.Logger

	// readPassword is replaced in tests
	readPassword func(prompt string) ([]byte, error)
}

func newRootCmd() *cobra.Command {
	c := &cli{readPassword: readTerminalPassword}

	root := &cobra.Command{
		Use:   "sealbox",
		Short: "Encrypt and decrypt data with a passphrase",
		Long: `sealbox seals data into a small self-describing container using
PBKDF2-HMAC-SHA256 and AES-256-GCM, and opens it again with the same passphrase.

Input is read from a file or STDIN and output written to a file or STDOUT.
Set ` + PassphraseEnvVar + ` to supply the passphrase non-interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log = logging.Logger{
				Verbose: c.verbose,
				Debug:   c.debug,
				Out:     cmd.ErrOrStderr(),
			}
			c.log.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), c.verbose, c.debug)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "enable debug output")

	root.AddCommand(c.newEncryptCmd())
	root.AddCommand(c.newDecryptCmd())
	return root
}
