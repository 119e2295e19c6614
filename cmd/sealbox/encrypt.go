package main

import (
	"fmt"

	"github.com/absfs/sealbox"
	"github.com/spf13/cobra"
)

func (c *cli) newEncryptCmd() *cobra.Command {
	var (
		input  string
		output string
		armor  bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Seal input into a container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Infof("Starting encrypt command")

			plaintext, err := readInput(cmd, input)
			if err != nil {
				return fmt.Errorf("failed to read input: %v", err)
			}
			c.log.Debugf("Read %d bytes of plaintext", len(plaintext))

			passphrase, err := c.passphrase(true)
			if err != nil {
				return fmt.Errorf("failed to get passphrase: %v", err)
			}

			var out []byte
			if armor {
				text, err := sealbox.EncryptToString(plaintext, passphrase)
				if err != nil {
					return fmt.Errorf("encryption failed: %v", err)
				}
				out = append([]byte(text), '\n')
			} else {
				out, err = sealbox.Encrypt(plaintext, passphrase)
				if err != nil {
					return fmt.Errorf("encryption failed: %v", err)
				}
			}
			c.log.Debugf("Container is %d bytes (armor=%t)", len(out), armor)

			if err := writeOutput(cmd, output, out); err != nil {
				return fmt.Errorf("failed to write output: %v", err)
			}
			c.log.Infof("Encryption complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default STDIN)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default STDOUT)")
	cmd.Flags().BoolVarP(&armor, "armor", "a", false, "write base64 text instead of raw bytes")
	return cmd
}
