package models

import (
	"go-order-relay/src/services/order/domain"
	"time"
)

type BannerResponse struct {
	Message string `json:"message"`
}

type ServicesStatus struct {
	GoogleSheets string `json:"google_sheets" example:"configured"`
	Telegram     string `json:"telegram" example:"not_configured"`
}

type HealthResponse struct {
	Status    string         `json:"status" example:"healthy"`
	Timestamp time.Time      `json:"timestamp"`
	Services  ServicesStatus `json:"services"`
}

type TestConnectionsResponse struct {
	GoogleSheets        domain.LedgerOutcome     `json:"google_sheets"`
	Telegram            domain.ConnectionOutcome `json:"telegram"`
	ServiceAccountEmail string                   `json:"service_account_email"`
}

func NewTestConnectionsResponse(d domain.Diagnostics) TestConnectionsResponse {
	return TestConnectionsResponse{
		GoogleSheets:        d.Ledger,
		Telegram:            d.Notifier,
		ServiceAccountEmail: d.ServiceAccountEmail,
	}
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" example:"storefront"`
}
