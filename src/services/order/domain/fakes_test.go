package domain

import (
	"context"
	"errors"
	"go-order-relay/src/services/order/domain/persistence"
	"sync"
	"time"
)

type fakeLedger struct {
	mu         sync.Mutex
	appended   []Order
	fail       string
	panicOn    bool
	stall      bool
	configured bool
	headerOK   bool
	ctxErr     error
}

func (l *fakeLedger) AppendOrder(ctx context.Context, order Order) LedgerOutcome {
	if l.panicOn {
		panic("sheets client exploded")
	}
	if l.stall {
		<-ctx.Done()
		return LedgerOutcome{Success: false, Error: "Failed to add order to sheet: " + ctx.Err().Error()}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ctxErr = ctx.Err()
	if l.fail != "" {
		return LedgerOutcome{Success: false, Error: l.fail}
	}
	l.appended = append(l.appended, order)
	return LedgerOutcome{Success: true, UpdatedRange: "Sheet1!A2:M2", UpdatedRows: 1}
}

func (l *fakeLedger) EnsureHeader(context.Context) LedgerOutcome {
	if !l.headerOK {
		return LedgerOutcome{Success: false, Error: "Service not initialized"}
	}
	return LedgerOutcome{Success: true, Message: "Header row already exists"}
}

func (l *fakeLedger) Configured() bool { return l.configured }

func (l *fakeLedger) ServiceAccountEmail() string { return "orders@project.iam.gserviceaccount.com" }

func (l *fakeLedger) Appended() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Order(nil), l.appended...)
}

type errorAlert struct {
	message string
	order   *Order
}

type fakeNotifier struct {
	mu         sync.Mutex
	orders     []Order
	alerts     []errorAlert
	fail       bool
	failAlerts bool
	configured bool
}

func (n *fakeNotifier) NotifyNewOrder(_ context.Context, order Order) NotificationOutcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
	if n.fail {
		return NotificationOutcome{Success: false, Error: "Telegram API error: 401"}
	}
	return NotificationOutcome{Success: true, Message: "Notification sent successfully"}
}

func (n *fakeNotifier) NotifyError(_ context.Context, message string, order *Order) NotificationOutcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, errorAlert{message: message, order: order})
	if n.failAlerts {
		return NotificationOutcome{Success: false, Error: "Telegram API error: 500"}
	}
	return NotificationOutcome{Success: true}
}

func (n *fakeNotifier) TestConnection(context.Context) ConnectionOutcome {
	return ConnectionOutcome{Success: true, BotInfo: map[string]any{"username": "shop_bot"}}
}

func (n *fakeNotifier) Configured() bool { return n.configured }

type fakeStore struct {
	mu      sync.Mutex
	records []persistence.OrderDocument
	fail    bool
}

func (s *fakeStore) InsertOrder(_ context.Context, order *persistence.OrderDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("mongo unavailable")
	}
	s.records = append(s.records, *order)
	return nil
}

func (s *fakeStore) RecentOrders(_ context.Context, limit int64) ([]persistence.OrderDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errors.New("mongo unavailable")
	}
	out := make([]persistence.OrderDocument, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

type countingLimiter struct {
	admit bool
	calls int
	limit int
}

func (l *countingLimiter) Admit(_ string, limit int, _ time.Duration) bool {
	l.calls++
	l.limit = limit
	return l.admit
}
