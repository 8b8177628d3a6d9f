package ledger

import (
	"context"
	"errors"
	"fmt"
	"go-order-relay/src/config"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/order/domain"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	ServiceAccountEmailPlaceholder = "SERVICE_ACCOUNT_EMAIL_PLACEHOLDER"
	StatusNewOrder                 = "New Order"
	valueInputOption               = "USER_ENTERED"
)

// Header is the fixed first row of the ledger sheet.
var Header = []string{
	"Timestamp",
	"Customer Name",
	"Customer Email",
	"Customer Phone",
	"Customer Address",
	"Product Name",
	"Product Category",
	"Product Price",
	"Selected Color",
	"Selected Size",
	"Quantity",
	"Notes",
	"Status",
}

// SheetsLedger appends one row per order to a Google Sheets range A:M.
// A ledger without credentials stays usable and reports every call as failed.
type SheetsLedger struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
	serviceEmail  string
	timeout       time.Duration
	logger        log.Logger
}

func NewSheetsLedger(ctx context.Context, cfg *config.Config, logger log.Logger) *SheetsLedger {
	l := &SheetsLedger{
		spreadsheetID: cfg.GoogleSheetID,
		sheetName:     cfg.GoogleSheetName,
		serviceEmail:  ServiceAccountEmailPlaceholder,
		timeout:       cfg.OutboundTimeout,
		logger:        logger,
	}

	credentials, err := os.ReadFile(cfg.GoogleCredentialsFile)
	if err != nil {
		logger.Warn(ctx, fmt.Sprintf("Credentials file %s not found, Google Sheets disabled", cfg.GoogleCredentialsFile))
		return l
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope)
	if err != nil {
		logger.Exception(ctx, "Failed to parse Google service account credentials", err)
		return l
	}
	if jwtConfig.Email != "" {
		l.serviceEmail = jwtConfig.Email
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentials), option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		logger.Exception(ctx, "Failed to initialize Google Sheets service", err)
		return l
	}
	l.values = service.Spreadsheets.Values

	logger.Info(ctx, "Google Sheets service initialized successfully")
	return l
}

// NewSheetsLedgerWithService wires an already constructed Sheets service.
func NewSheetsLedgerWithService(service *sheets.Service, spreadsheetID, sheetName, serviceEmail string, timeout time.Duration, logger log.Logger) *SheetsLedger {
	return &SheetsLedger{
		values:        service.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		serviceEmail:  serviceEmail,
		timeout:       timeout,
		logger:        logger,
	}
}

func (l *SheetsLedger) Configured() bool {
	return l.values != nil
}

func (l *SheetsLedger) ServiceAccountEmail() string {
	return l.serviceEmail
}

// Row maps an order onto the ledger's 13 columns.
// Client-supplied cells are stored as literal text.
func Row(order domain.Order) []string {
	return []string{
		order.Timestamp,
		literal(order.Customer.Name),
		literal(order.Customer.Email),
		literal(order.Customer.Phone),
		literal(order.Customer.Address),
		literal(order.Product.Name),
		literal(order.Product.Category),
		literal(order.Product.Price),
		literal(order.Product.Color),
		literal(order.Product.Size),
		strconv.Itoa(order.Quantity),
		literal(order.Notes),
		StatusNewOrder,
	}
}

// literal keeps USER_ENTERED from reading a cell as a formula or number.
func literal(value string) string {
	if value != "" && strings.ContainsRune("=+-@", rune(value[0])) {
		return "'" + value
	}
	return value
}

func (l *SheetsLedger) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}

// AppendOrder writes exactly one row. It never retries.
func (l *SheetsLedger) AppendOrder(ctx context.Context, order domain.Order) domain.LedgerOutcome {
	if !l.Configured() {
		return domain.LedgerOutcome{
			Success: false,
			Error:   "Failed to add order to sheet: Google Sheets service not initialized. Please check credentials file.",
		}
	}

	ctx, cancel := l.callContext(ctx)
	defer cancel()

	row := Row(order)
	resp, err := l.values.Append(l.spreadsheetID, l.sheetName+"!A:M", &sheets.ValueRange{
		Values: [][]interface{}{cells(row)},
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		l.logger.Exception(ctx, "Failed to append order "+order.ID+" to Google Sheets", err)
		return domain.LedgerOutcome{Success: false, Error: describe("Failed to add order to sheet", err)}
	}

	outcome := domain.LedgerOutcome{Success: true, Message: "Order added to sheet", RowData: row}
	if resp.Updates != nil {
		outcome.UpdatedRange = resp.Updates.UpdatedRange
		outcome.UpdatedRows = resp.Updates.UpdatedRows
	}

	l.logger.InfoWithExtra(ctx, "Successfully added order to sheet", map[string]any{
		"OrderId":      order.ID,
		"UpdatedRange": outcome.UpdatedRange,
	})
	return outcome
}

// EnsureHeader writes Header into row 1 only when that row is empty.
func (l *SheetsLedger) EnsureHeader(ctx context.Context) domain.LedgerOutcome {
	if !l.Configured() {
		return domain.LedgerOutcome{Success: false, Error: "Service not initialized"}
	}

	ctx, cancel := l.callContext(ctx)
	defer cancel()

	headerRange := l.sheetName + "!A1:M1"
	existing, err := l.values.Get(l.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		l.logger.Exception(ctx, "Failed to read Google Sheets header row", err)
		return domain.LedgerOutcome{Success: false, Error: describe("Failed to read header row", err)}
	}
	if len(existing.Values) > 0 {
		return domain.LedgerOutcome{Success: true, Message: "Header row already exists"}
	}

	_, err = l.values.Update(l.spreadsheetID, headerRange, &sheets.ValueRange{
		Values: [][]interface{}{cells(Header)},
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		l.logger.Exception(ctx, "Failed to create Google Sheets header row", err)
		return domain.LedgerOutcome{Success: false, Error: describe("Failed to create header row", err)}
	}

	l.logger.Info(ctx, "Header row created successfully")
	return domain.LedgerOutcome{Success: true, Message: "Header row created"}
}

func cells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func describe(prefix string, err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Google Sheets API error: %d %s", apiErr.Code, apiErr.Message)
	}
	return prefix + ": " + err.Error()
}
