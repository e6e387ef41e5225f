package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raykavin/tickerbot"
	"github.com/raykavin/tickerbot/internal/config"
	"github.com/raykavin/tickerbot/pkg/exchange/binance"
	"github.com/spf13/cobra"
)

// Command line flags
var (
	topSize int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tickerbot",
		Short:   "Telegram webhook bot for public crypto market data",
		Version: "1.0.0",
	}

	rootCmd.AddCommand(
		buildServeCmd(),
		buildPriceCmd(),
		buildInfoCmd(),
		buildTopCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Register the webhook and serve Telegram updates",
		RunE:  runServe,
	}
}

func buildPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "price SYMBOL",
		Short:   "Print the last price of a pair",
		Example: "tickerbot price BTC-USDT",
		Args:    cobra.ExactArgs(1),
		RunE:    runPrice,
	}
}

func buildInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "info SYMBOL",
		Short:   "Print the 24h statistics of a pair",
		Example: "tickerbot info ETH-USDT",
		Args:    cobra.ExactArgs(1),
		RunE:    runInfo,
	}
}

func buildTopCmd() *cobra.Command {
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Print the pairs with the highest 24h quote volume",
		Args:  cobra.NoArgs,
		RunE:  runTop,
	}

	topCmd.Flags().IntVarP(&topSize, "limit", "n", 5, "Number of pairs to list")

	return topCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := tickerbot.NewBot(ctx, &cfg.Settings)
	if err != nil {
		return err
	}

	return bot.Run(ctx)
}

// loadMarket builds the market client used by the query subcommands
func loadMarket() (*binance.Market, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return binance.FromSettings(cfg.Settings.Market), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
