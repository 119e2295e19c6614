package main

import (
	"errors"
	"fmt"

	"github.com/absfs/sealbox"
	"github.com/spf13/cobra"
)

func (c *cli) newDecryptCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Open a container (raw or base64) and write the plaintext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Infof("Starting decrypt command")

			data, err := readInput(cmd, input)
			if err != nil {
				return fmt.Errorf("failed to read input: %v", err)
			}

			container := data
			if !sealbox.IsContainer(data) {
				c.log.Debugf("Input is not a raw container, decoding base64")
				container, err = sealbox.DecodeString(string(data))
				if err != nil {
					return fmt.Errorf("invalid input: %v", err)
				}
			}

			passphrase, err := c.passphrase(false)
			if err != nil {
				return fmt.Errorf("failed to get passphrase: %v", err)
			}

			plaintext, err := sealbox.Decrypt(container, passphrase)
			if err != nil {
				if sealbox.IsAuthenticationError(err) {
					return errors.New("decryption failed (wrong passphrase or corrupted data?)")
				}
				return fmt.Errorf("decryption failed: %v", err)
			}
			c.log.Debugf("Recovered %d bytes of plaintext", len(plaintext))

			if err := writeOutput(cmd, output, plaintext); err != nil {
				return fmt.Errorf("failed to write output: %v", err)
			}
			c.log.Infof("Decryption complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default STDIN)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default STDOUT)")
	return cmd
}
