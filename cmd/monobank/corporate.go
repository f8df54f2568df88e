package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/monobank"
)

var errNotGranted = errors.New("access request is not confirmed yet")

func (c *cli) corporateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corporate",
		Short: "Signed calls on behalf of users who granted access (MONOBANK_KEY_ID, MONOBANK_PRIVATE_KEY)",
	}
	cmd.AddCommand(
		c.corporateRequestCmd(),
		c.corporateCheckCmd(),
		c.corporateUserInfoCmd(),
		c.corporateStatementCmd(),
		c.corporateStatementByCurrencyCmd(),
		c.corporateWebhookCmd(),
	)
	return cmd
}

func (c *cli) corporateRequestCmd() *cobra.Command {
	var permissions, callback string
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Create an access request and print its accept URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := monobank.ParsePermissions(permissions)
			if err != nil {
				return err
			}
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			req, err := client.GetAccessRequest(cmd.Context(), perms, callback)
			if err != nil {
				return err
			}
			return c.print(req)
		},
	}
	cmd.Flags().StringVar(&permissions, "permissions", "sp", "requested permissions: s (statement), p (personal info)")
	cmd.Flags().StringVar(&callback, "callback", "", "URL the user is redirected to after confirming")
	return cmd
}

func (c *cli) corporateCheckCmd() *cobra.Command {
	var (
		wait     bool
		interval time.Duration
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "check <requestId>",
		Short: "Report whether the user confirmed the access request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			requestID := args[0]
			check := func(ctx context.Context) (bool, error) {
				return client.CheckAccessRequest(ctx, requestID)
			}
			if !wait {
				granted, err := check(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(map[string]bool{"granted": granted})
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := waitForGrant(ctx, interval, check, c.logger); err != nil {
				return err
			}
			return c.print(map[string]bool{"granted": true})
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the request is confirmed")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "poll interval with --wait")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "give up waiting after this long")
	return cmd
}

// waitForGrant 按固定间隔轮询 check，直到确认、出现不可重试的错误或 ctx 结束。
// 429 视为可重试。
func waitForGrant(ctx context.Context, interval time.Duration, check func(context.Context) (bool, error), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	b := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	return backoff.RetryNotify(func() error {
		granted, err := check(ctx)
		switch {
		case apierrors.Is(err, apierrors.CodeTooManyRequests):
			return err
		case err != nil:
			return backoff.Permanent(err)
		case !granted:
			return errNotGranted
		}
		return nil
	}, b, func(err error, next time.Duration) {
		logger.Info("waiting for access confirmation", slog.String("reason", err.Error()), slog.Duration("next", next))
	})
}

func (c *cli) corporateUserInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-info <requestId>",
		Short: "Print client info of the user behind requestId",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			info, err := client.GetUserInfoWithRequestID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.print(info)
		},
	}
}

func (c *cli) corporateStatementCmd() *cobra.Command {
	var (
		account string
		flags   statementFlags
	)
	cmd := &cobra.Command{
		Use:   "statement <requestId>",
		Short: "Print transactions of the user behind requestId",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := flags.resolve(time.Now())
			if err != nil {
				return err
			}
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			txs, err := client.GetStatementWithRequestID(cmd.Context(), args[0], account, from, to)
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

func (c *cli) corporateStatementByCurrencyCmd() *cobra.Command {
	var flags statementFlags
	cmd := &cobra.Command{
		Use:   "statement-by-currency <requestId> <UAH|980>",
		Short: "Print transactions of the user's account holding the given currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := flags.resolve(time.Now())
			if err != nil {
				return err
			}
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			txs, err := client.GetStatementByCurrencyCodeWithRequestID(cmd.Context(), args[0], args[1], from, to)
			if err != nil {
				return err
			}
			return c.print(txs)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) corporateWebhookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webhook <requestId> <url>",
		Short: "Register a webhook for the user behind requestId",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.corporateClient()
			if err != nil {
				return err
			}
			if err := client.SetWebhookWithRequestID(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, "webhook set")
			return err
		},
	}
}
