package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

var errPassphraseMismatch = errors.New("passphrases do not match")

// passphrase returns the passphrase from the environment or the terminal.
// When confirm is set an interactive passphrase is asked for twice.
func (c *cli) passphrase(confirm bool) (string, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		c.log.Debugf("Using passphrase from %s", PassphraseEnvVar)
		return env, nil
	}

	first, err := c.readPassword("Enter passphrase: ")
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(first)

	if len(first) == 0 {
		return "", errors.New("passphrase cannot be empty")
	}

	if confirm {
		second, err := c.readPassword("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		defer memguard.WipeBytes(second)

		if !bytes.Equal(first, second) {
			return "", errPassphraseMismatch
		}
	}

	return string(first), nil
}

// readTerminalPassword prompts on stderr and reads without echo, falling back
// to /dev/tty when STDIN carries data
func readTerminalPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		return term.ReadPassword(fd)
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("STDIN is piped and no terminal is available, set %s", PassphraseEnvVar)
	}
	defer tty.Close()

	return term.ReadPassword(int(tty.Fd()))
}
