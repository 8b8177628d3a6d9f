package domain

import (
	"context"
	"errors"
	"fmt"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/order/domain/persistence"
	"time"

	"github.com/google/uuid"
)

const (
	ServiceConfigured    = "configured"
	ServiceNotConfigured = "not_configured"

	defaultRateLimit       = 5
	defaultRateWindow      = 300 * time.Second
	defaultOutboundTimeout = 10 * time.Second
	defaultRecentOrders    = 50
	maxRecentOrders        = 1000
)

// Ledger is the hard dependency: an order is placed only once its row is appended.
type Ledger interface {
	AppendOrder(ctx context.Context, order Order) LedgerOutcome
	EnsureHeader(ctx context.Context) LedgerOutcome
	Configured() bool
	ServiceAccountEmail() string
}

// Notifier failures never fail an order.
type Notifier interface {
	NotifyNewOrder(ctx context.Context, order Order) NotificationOutcome
	NotifyError(ctx context.Context, message string, order *Order) NotificationOutcome
	TestConnection(ctx context.Context) ConnectionOutcome
	Configured() bool
}

type RateLimiter interface {
	Admit(identity string, limit int, window time.Duration) bool
}

type OrderStore interface {
	InsertOrder(ctx context.Context, order *persistence.OrderDocument) error
	RecentOrders(ctx context.Context, limit int64) ([]persistence.OrderDocument, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, identity string, submission OrderSubmission) (*PlacedOrder, error)
	RecentOrders(ctx context.Context, limit int) ([]persistence.OrderDocument, error)
	Health() ServiceHealth
	Diagnose(ctx context.Context) Diagnostics
}

type ServiceHealth struct {
	Ledger   string
	Notifier string
}

type Diagnostics struct {
	Ledger              LedgerOutcome
	Notifier            ConnectionOutcome
	ServiceAccountEmail string
}

type Options struct {
	RateLimit       int
	RateWindow      time.Duration
	OutboundTimeout time.Duration
	Now             func() time.Time
	NewID           func() string
}

type orderService struct {
	logger    log.Logger
	validator OrderValidator
	limiter   RateLimiter
	ledger    Ledger
	notifier  Notifier
	store     OrderStore
	opts      Options
}

func NewOrderService(
	logger log.Logger,
	limiter RateLimiter,
	ledger Ledger,
	notifier Notifier,
	store OrderStore,
	opts Options,
) *orderService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = defaultRateWindow
	}
	if opts.OutboundTimeout <= 0 {
		opts.OutboundTimeout = defaultOutboundTimeout
	}
	return &orderService{
		logger:    logger,
		validator: NewOrderValidator(),
		limiter:   limiter,
		ledger:    ledger,
		notifier:  notifier,
		store:     store,
		opts:      opts,
	}
}

// PlaceOrder runs the submission pipeline:
// validate, rate-limit, append to ledger, notify, back up, respond.
// Only validation, rate limiting and the ledger write can fail the order.
func (s *orderService) PlaceOrder(ctx context.Context, identity string, submission OrderSubmission) (placed *PlacedOrder, err error) {
	var (
		admitted bool
		order    *Order
	)
	// Outbound calls must outlive a caller that disconnects mid-pipeline.
	workCtx := context.WithoutCancel(ctx)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.logger.Exception(ctx, "Order pipeline panicked", fmt.Errorf("panic: %v", r))
		if admitted {
			s.alert(workCtx, fmt.Sprintf("Order processing failed: %v", r), order)
		}
		placed, err = nil, ErrInternal
	}()

	if err := s.validator.Validate(submission); err != nil {
		s.logger.WarnWithExtra(ctx, "Order submission rejected", map[string]any{
			"ClientIp": identity,
			"Reason":   err.Error(),
		})
		return nil, err
	}

	if !s.limiter.Admit(identity, s.opts.RateLimit, s.opts.RateWindow) {
		s.logger.WarnWithExtra(ctx, "Order submission rate limited", map[string]any{"ClientIp": identity})
		return nil, ErrRateLimited
	}
	admitted = true

	receivedAt := s.opts.Now().UTC()
	newOrder := NewOrder(submission, s.opts.NewID(), receivedAt)
	order = &newOrder

	ledgerOutcome := s.appendToLedger(workCtx, newOrder)
	if !ledgerOutcome.Success {
		s.logger.Exception(ctx, "Failed to add order "+newOrder.ID+" to ledger", errors.New(ledgerOutcome.Error))
		s.alert(workCtx, "Failed to add order to Google Sheets: "+ledgerOutcome.Error, order)
		s.backup(workCtx, newOrder, OrderStatusLedgerFailed, ledgerOutcome, NotificationOutcome{
			Success: false,
			Error:   "not attempted",
		}, receivedAt)
		return nil, ErrOrderNotPlaced
	}

	notifyOutcome := s.notifyNewOrder(workCtx, newOrder)
	if !notifyOutcome.Success {
		s.logger.WarnWithExtra(ctx, "Failed to send order notification", map[string]any{
			"OrderId": newOrder.ID,
			"Reason":  notifyOutcome.Error,
		})
	}

	s.backup(workCtx, newOrder, OrderStatusPlaced, ledgerOutcome, notifyOutcome, receivedAt)

	s.logger.InfoWithExtra(ctx, "Order processed successfully", map[string]any{"OrderId": newOrder.ID})
	return &PlacedOrder{OrderID: newOrder.ID, Timestamp: receivedAt}, nil
}

func (s *orderService) appendToLedger(ctx context.Context, order Order) LedgerOutcome {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.OutboundTimeout)
	defer cancel()
	return s.ledger.AppendOrder(callCtx, order)
}

func (s *orderService) notifyNewOrder(ctx context.Context, order Order) NotificationOutcome {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.OutboundTimeout)
	defer cancel()
	return s.notifier.NotifyNewOrder(callCtx, order)
}

// alert sends an error notification to the shop owner; its failure is swallowed.
func (s *orderService) alert(ctx context.Context, message string, order *Order) {
	BestEffort(ctx, s.logger, "Error notification", func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.OutboundTimeout)
		defer cancel()
		outcome := s.notifier.NotifyError(callCtx, message, order)
		if !outcome.Success {
			return errors.New(outcome.Error)
		}
		return nil
	})
}

func (s *orderService) backup(
	ctx context.Context,
	order Order,
	status string,
	ledger LedgerOutcome,
	notification NotificationOutcome,
	receivedAt time.Time,
) {
	BestEffort(ctx, s.logger, "Order backup", func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.OutboundTimeout)
		defer cancel()
		return s.store.InsertOrder(callCtx, toDocument(order, status, ledger, notification, receivedAt))
	})
}

// RecentOrders lists backed-up orders, newest first.
func (s *orderService) RecentOrders(ctx context.Context, limit int) ([]persistence.OrderDocument, error) {
	switch {
	case limit <= 0:
		limit = defaultRecentOrders
	case limit > maxRecentOrders:
		limit = maxRecentOrders
	}

	orders, err := s.store.RecentOrders(ctx, int64(limit))
	if err != nil {
		s.logger.Exception(ctx, "Failed to get orders", err)
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// Health reports collaborator configuration without calling them.
func (s *orderService) Health() ServiceHealth {
	return ServiceHealth{
		Ledger:   configuredStatus(s.ledger.Configured()),
		Notifier: configuredStatus(s.notifier.Configured()),
	}
}

// Diagnose performs live checks against both collaborators.
// The ledger check provisions the header row when it is missing.
func (s *orderService) Diagnose(ctx context.Context) Diagnostics {
	ledgerCtx, cancelLedger := context.WithTimeout(ctx, s.opts.OutboundTimeout)
	defer cancelLedger()
	ledgerOutcome := s.ledger.EnsureHeader(ledgerCtx)

	notifierCtx, cancelNotifier := context.WithTimeout(ctx, s.opts.OutboundTimeout)
	defer cancelNotifier()
	notifierOutcome := s.notifier.TestConnection(notifierCtx)

	return Diagnostics{
		Ledger:              ledgerOutcome,
		Notifier:            notifierOutcome,
		ServiceAccountEmail: s.ledger.ServiceAccountEmail(),
	}
}

func configuredStatus(ok bool) string {
	if ok {
		return ServiceConfigured
	}
	return ServiceNotConfigured
}

func toDocument(
	order Order,
	status string,
	ledger LedgerOutcome,
	notification NotificationOutcome,
	receivedAt time.Time,
) *persistence.OrderDocument {
	return &persistence.OrderDocument{
		OrderID:         order.ID,
		Timestamp:       order.Timestamp,
		CustomerName:    order.Customer.Name,
		CustomerEmail:   order.Customer.Email,
		CustomerPhone:   order.Customer.Phone,
		CustomerAddress: order.Customer.Address,
		ProductID:       order.Product.ID,
		ProductName:     order.Product.Name,
		ProductCategory: order.Product.Category,
		ProductPrice:    order.Product.Price,
		SelectedColor:   order.Product.Color,
		SelectedSize:    order.Product.Size,
		Quantity:        order.Quantity,
		Notes:           order.Notes,
		Status:          status,
		SheetsResult: persistence.OutcomeDocument{
			Success:      ledger.Success,
			Message:      ledger.Message,
			Error:        ledger.Error,
			UpdatedRange: ledger.UpdatedRange,
			UpdatedRows:  ledger.UpdatedRows,
			RowData:      ledger.RowData,
		},
		TelegramResult: persistence.OutcomeDocument{
			Success: notification.Success,
			Message: notification.Message,
			Error:   notification.Error,
		},
		CreatedAt: receivedAt,
	}
}
