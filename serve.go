package main

import (
	"context"
	"fmt"
	"go-order-relay/src/controllers"
	"go-order-relay/src/infrastructure/mongo"
	"go-order-relay/src/services/order/domain"
	"go-order-relay/src/services/order/domain/persistence"
	"go-order-relay/src/services/ratelimit"
	"go-order-relay/src/services/status"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go-order-relay/docs"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := newClients(ctx)
	if err != nil {
		return err
	}
	logger, cfg := deps.logger, deps.config

	client, err := mongo.GetMongoClient(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Exception(ctx, "MongoDB disconnect failed", err)
		}
	}()
	logger.Info(ctx, "MongoDB connection successful")

	db := mongo.GetDatabase(client, cfg)
	orderRepository := persistence.NewOrderRepository(db)
	statusRepository := persistence.NewStatusCheckRepository(db)

	orderService := domain.NewOrderService(logger, ratelimit.NewSlidingWindow(), deps.ledger, deps.notifier, orderRepository, domain.Options{
		RateLimit:       cfg.RateLimitMaxRequests,
		RateWindow:      cfg.RateLimitWindow,
		OutboundTimeout: cfg.OutboundTimeout,
	})
	statusService := status.NewStatusService(logger, statusRepository)

	app := controllers.NewApp(logger,
		controllers.NewSystemController(orderService),
		controllers.NewOrderController(orderService),
		controllers.NewStatusController(statusService),
	)

	logger.InfoWithExtra(ctx, "Order relay starting up", map[string]any{
		"GoogleSheetsConfigured": deps.ledger.Configured(),
		"TelegramConfigured":     deps.notifier.Configured(),
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+cfg.HTTPPort)
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			serverShutdown <- err
		}
	}()

	select {
	case <-signals:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
		return fmt.Errorf("server stopped: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
	return nil
}
