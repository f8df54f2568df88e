package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aegis-sign/monobank/pkg/signer"
)

func (c *cli) keygenCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a secp256k1 key pair; the public key is registered with the bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, privPEM, err := signer.Generate()
			if err != nil {
				return err
			}
			pubPEM, err := s.PublicKeyPEM()
			if err != nil {
				return err
			}
			if out == "" {
				if _, err := c.out.Write(privPEM); err != nil {
					return err
				}
			} else {
				if err := os.WriteFile(out, privPEM, 0o600); err != nil {
					return fmt.Errorf("write private key: %w", err)
				}
				c.logger.Info("private key written", "path", out)
			}
			_, err = c.out.Write(pubPEM)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the private key to this file instead of stdout")
	return cmd
}
