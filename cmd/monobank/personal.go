package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *cli) personalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personal",
		Short: "Calls authenticated with a personal X-Token (MONOBANK_TOKEN)",
	}
	cmd.AddCommand(
		c.personalUserInfoCmd(),
		c.personalStatementCmd(),
		c.personalStatementByCurrencyCmd(),
		c.personalWebhookCmd(),
	)
	return cmd
}

func (c *cli) personalUserInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-info",
		Short: "Print client info and accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.personalClient()
			if err != nil {
				return err
			}
			info, err := client.GetUserInfo(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(info)
		},
	}
}

func (c *cli) personalStatementCmd() *cobra.Command {
	var (
		account string
		flags   statementFlags
	)
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print account transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := flags.resolve(time.Now())
			if err != nil {
				return err
			}
			client, err := c.personalClient()
			if err != nil {
				return err
			}
			txs, err := client.GetStatement(cmd.Context(), account, from, to)
			if err != nil {
				return err
			}
			return c.print(txs)
		},
	}
	cmd.Flags().StringVar(&account, "account", "0", "account id, 0 is the default account")
	flags.register(cmd)
	return cmd
}

func (c *cli) personalStatementByCurrencyCmd() *cobra.Command {
	var flags statementFlags
	cmd := &cobra.Command{
		Use:   "statement-by-currency <UAH|980>",
		Short: "Print transactions of the account holding the given currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := flags.resolve(time.Now())
			if err != nil {
				return err
			}
			client, err := c.personalClient()
			if err != nil {
				return err
			}
			txs, err := client.GetStatementByCurrencyCode(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}
			return c.print(txs)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) personalWebhookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webhook <url>",
		Short: "Register the webhook receiving transaction events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.personalClient()
			if err != nil {
				return err
			}
			if err := client.SetWebhook(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, "webhook set")
			return err
		},
	}
}
