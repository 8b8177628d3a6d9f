package models

import (
	"go-order-relay/src/services/order/domain"
	"go-order-relay/src/services/order/domain/persistence"
	"time"
)

type OrderRequest struct {
	CustomerName    string `json:"customer_name" example:"Jane Doe"`
	CustomerEmail   string `json:"customer_email" example:"jane@example.com"`
	CustomerPhone   string `json:"customer_phone" example:"9998887777"`
	CustomerAddress string `json:"customer_address" example:"12 Long Enough Street"`
	ProductID       *int   `json:"product_id" example:"1"`
	ProductName     string `json:"product_name" example:"Kit"`
	ProductCategory string `json:"product_category" example:"Kits"`
	ProductPrice    string `json:"product_price" example:"$10"`
	SelectedColor   string `json:"selected_color" example:"Red"`
	SelectedSize    string `json:"selected_size" example:"M"`
	Quantity        *int   `json:"quantity" example:"2"`
	Notes           string `json:"notes"`
	Honeypot        string `json:"honeypot"`
}

func (r OrderRequest) ToSubmission() domain.OrderSubmission {
	return domain.OrderSubmission{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		ProductCategory: r.ProductCategory,
		ProductPrice:    r.ProductPrice,
		SelectedColor:   r.SelectedColor,
		SelectedSize:    r.SelectedSize,
		Quantity:        r.Quantity,
		Notes:           r.Notes,
		Honeypot:        r.Honeypot,
	}
}

type OrderResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status" example:"success"`
	Message   string    `json:"message"`
	OrderID   string    `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

type OrdersResponse struct {
	Orders []persistence.OrderDocument `json:"orders"`
}

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Status string              `json:"status" example:"error"`
	Detail string              `json:"detail"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Status: "error", Detail: detail}
}
