package domain

import "time"

const (
	// TimestampLayout is the ledger-compatible order timestamp format (always UTC).
	TimestampLayout = "2006-01-02 15:04:05"

	OrderStatusPlaced       = "placed"
	OrderStatusLedgerFailed = "ledger_failed"

	defaultQuantity = 1
)

// OrderSubmission is the client-supplied order payload before validation.
type OrderSubmission struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string `json:"customer_email" validate:"required,max=254,shopemail"`
	CustomerPhone   string `json:"customer_phone" validate:"required,min=10,max=15"`
	CustomerAddress string `json:"customer_address" validate:"required,min=10,max=500"`
	ProductID       *int   `json:"product_id" validate:"required"`
	ProductName     string `json:"product_name" validate:"required,max=200"`
	ProductCategory string `json:"product_category" validate:"max=200"`
	ProductPrice    string `json:"product_price" validate:"max=200"`
	SelectedColor   string `json:"selected_color" validate:"max=200"`
	SelectedSize    string `json:"selected_size" validate:"max=200"`
	Quantity        *int   `json:"quantity" validate:"omitempty,min=1,max=100"`
	Notes           string `json:"notes" validate:"max=500"`
	Honeypot        string `json:"honeypot" validate:"honeypot"`
}

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type Product struct {
	ID       int
	Name     string
	Category string
	Price    string
	Color    string
	Size     string
}

// Order is a validated submission with its server-assigned identity.
type Order struct {
	ID        string
	Timestamp string
	Customer  Customer
	Product   Product
	Quantity  int
	Notes     string
}

// NewOrder builds an Order from an already validated submission.
func NewOrder(submission OrderSubmission, id string, receivedAt time.Time) Order {
	quantity := defaultQuantity
	if submission.Quantity != nil {
		quantity = *submission.Quantity
	}
	var productID int
	if submission.ProductID != nil {
		productID = *submission.ProductID
	}

	return Order{
		ID:        id,
		Timestamp: receivedAt.UTC().Format(TimestampLayout),
		Customer: Customer{
			Name:    submission.CustomerName,
			Email:   submission.CustomerEmail,
			Phone:   submission.CustomerPhone,
			Address: submission.CustomerAddress,
		},
		Product: Product{
			ID:       productID,
			Name:     submission.ProductName,
			Category: submission.ProductCategory,
			Price:    submission.ProductPrice,
			Color:    submission.SelectedColor,
			Size:     submission.SelectedSize,
		},
		Quantity: quantity,
		Notes:    submission.Notes,
	}
}

// PlacedOrder is returned to the caller once the ledger accepted the order.
type PlacedOrder struct {
	OrderID   string
	Timestamp time.Time
}

type LedgerOutcome struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message,omitempty"`
	Error        string   `json:"error,omitempty"`
	UpdatedRange string   `json:"updated_range,omitempty"`
	UpdatedRows  int64    `json:"updated_rows,omitempty"`
	RowData      []string `json:"row_data,omitempty"`
}

type NotificationOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ConnectionOutcome struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	BotInfo map[string]any `json:"bot_info,omitempty"`
}
