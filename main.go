package main

import (
	"context"
	"fmt"
	"go-order-relay/src/config"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/ledger"
	"go-order-relay/src/services/notification"
	"os"

	"github.com/spf13/cobra"
)

// @title        Order Relay API
// @version      1.0
// @description  Accepts storefront orders, records them in a Google Sheets ledger and alerts the shop owner on Telegram.
// @host         localhost:8080
// @BasePath     /
func main() {
	rootCmd := &cobra.Command{
		Use:   "order-relay",
		Short: "Order relay - storefront orders to Google Sheets and Telegram",
		RunE:  runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(diagnoseCmd())
	rootCmd.AddCommand(initLedgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// clients holds the two outbound collaborators every command needs.
type clients struct {
	config   *config.Config
	logger   log.Logger
	ledger   *ledger.SheetsLedger
	notifier *notification.TelegramNotifier
}

func newClients(ctx context.Context) (*clients, error) {
	logger := log.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	return &clients{
		config:   cfg,
		logger:   logger,
		ledger:   ledger.NewSheetsLedger(ctx, cfg, logger),
		notifier: notification.NewTelegramNotifier(cfg, logger),
	}, nil
}
