package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aegis-sign/monobank/pkg/apierrors"
	"github.com/aegis-sign/monobank/pkg/monobank"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: cannot load .env:", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if apiErr, ok := apierrors.FromError(err); ok {
			fmt.Fprintf(os.Stderr, "error: %s: %s\n", apiErr.Code, apiErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// cli 保存全局 flag 与输出目标，子命令通过它构造客户端。
type cli struct {
	configPath string
	verbose    bool

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "monobank",
		Short:         "Command line client for the monobank open API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (MONOBANK_* env vars override it)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log every request")

	root.AddCommand(
		c.currencyCmd(),
		c.personalCmd(),
		c.corporateCmd(),
		c.keygenCmd(),
	)
	return root
}

// loadConfig 依次应用默认值、YAML 文件与环境变量。
func (c *cli) loadConfig() (monobank.Config, error) {
	cfg := monobank.DefaultConfig()
	if c.configPath != "" {
		var err error
		cfg, err = monobank.LoadConfigFile(c.configPath)
		if err != nil {
			return cfg, err
		}
	}
	cfg.OverrideFromEnv()
	return cfg, cfg.Validate()
}

func (c *cli) personalClient() (*monobank.PersonalClient, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return monobank.NewPersonal(cfg, monobank.WithLogger(c.logger))
}

func (c *cli) corporateClient() (*monobank.CorporateClient, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return monobank.NewCorporate(cfg, monobank.WithLogger(c.logger))
}

func (c *cli) currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency",
		Short: "Print public exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// /bank/currency 是公开接口，任一模式的凭据都可以
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			var client interface {
				GetCurrencyList(ctx context.Context) ([]monobank.CurrencyInfo, error)
			}
			switch {
			case cfg.Token != "":
				client, err = monobank.NewPersonal(cfg, monobank.WithLogger(c.logger))
			case cfg.KeyID != "":
				client, err = monobank.NewCorporate(cfg, monobank.WithLogger(c.logger))
			default:
				return errors.New("set MONOBANK_TOKEN or MONOBANK_KEY_ID")
			}
			if err != nil {
				return err
			}
			rates, err := client.GetCurrencyList(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(rates)
		},
	}
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
