package main

import (
	"context"
	"encoding/json"
	"fmt"
	"go-order-relay/src/controllers/models"
	"go-order-relay/src/services/order/domain"
	"os"

	"github.com/spf13/cobra"
)

func diagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check Google Sheets and Telegram connectivity",
		Long: `Run the same live checks as GET /api/test-connections:
- provision the ledger header row if it is missing
- call Telegram getMe
and print the outcomes as JSON.`,
		RunE: runDiagnose,
	}
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	deps, err := newClients(ctx)
	if err != nil {
		return err
	}

	ledgerCtx, cancelLedger := context.WithTimeout(ctx, deps.config.OutboundTimeout)
	defer cancelLedger()
	notifierCtx, cancelNotifier := context.WithTimeout(ctx, deps.config.OutboundTimeout)
	defer cancelNotifier()

	report := models.NewTestConnectionsResponse(domain.Diagnostics{
		Ledger:              deps.ledger.EnsureHeader(ledgerCtx),
		Notifier:            deps.notifier.TestConnection(notifierCtx),
		ServiceAccountEmail: deps.ledger.ServiceAccountEmail(),
	})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to print diagnostics: %w", err)
	}
	if !report.GoogleSheets.Success || !report.Telegram.Success {
		return fmt.Errorf("one or more connections failed")
	}
	return nil
}

func initLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-ledger",
		Short: "Write the ledger header row when the sheet is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			deps, err := newClients(ctx)
			if err != nil {
				return err
			}

			callCtx, cancel := context.WithTimeout(ctx, deps.config.OutboundTimeout)
			defer cancel()

			outcome := deps.ledger.EnsureHeader(callCtx)
			if !outcome.Success {
				return fmt.Errorf("failed to initialize ledger: %s", outcome.Error)
			}
			fmt.Println(outcome.Message)
			return nil
		},
	}
}
