package notification

import (
	"go-order-relay/src/services/order/domain"
	"strconv"
	"strings"
	"time"
)

const unknownCustomer = "Unknown"

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// FormatOrderMessage renders the MarkdownV2 body of a new order alert.
func FormatOrderMessage(order domain.Order) string {
	field := func(v string) string { return EscapeMarkdown(orDefault(v, "N/A")) }

	var b strings.Builder
	b.WriteString("🛒 *NEW ORDER RECEIVED\\!*\n\n")
	b.WriteString("📋 *Order Details:*\n")
	b.WriteString("• *Customer:* " + field(order.Customer.Name) + "\n")
	b.WriteString("• *Phone:* " + field(order.Customer.Phone) + "\n")
	b.WriteString("• *Email:* " + field(order.Customer.Email) + "\n")
	b.WriteString("• *Address:* " + field(order.Customer.Address) + "\n\n")
	b.WriteString("🛍️ *Product Information:*\n")
	b.WriteString("• *Product:* " + field(order.Product.Name) + "\n")
	b.WriteString("• *Category:* " + field(order.Product.Category) + "\n")
	b.WriteString("• *Price:* " + field(order.Product.Price) + "\n")
	b.WriteString("• *Color:* " + field(order.Product.Color) + "\n")
	b.WriteString("• *Size:* " + field(order.Product.Size) + "\n")
	b.WriteString("• *Quantity:* " + EscapeMarkdown(strconv.Itoa(order.Quantity)) + "\n\n")
	b.WriteString("📝 *Notes:* " + EscapeMarkdown(orDefault(order.Notes, "None")) + "\n\n")
	b.WriteString("⏰ *Timestamp:* " + EscapeMarkdown(order.Timestamp) + "\n\n")
	b.WriteString("Please contact the customer to confirm the order\\.")
	return b.String()
}

// FormatErrorMessage renders an operational alert. order may be nil.
func FormatErrorMessage(message string, order *domain.Order, at time.Time) string {
	customer := unknownCustomer
	if order != nil {
		customer = orDefault(order.Customer.Name, unknownCustomer)
	}

	var b strings.Builder
	b.WriteString("⚠️ *ORDER PROCESSING ERROR\\!*\n\n")
	b.WriteString("*Error Details:*\n")
	b.WriteString("• *Customer:* " + EscapeMarkdown(customer) + "\n")
	b.WriteString("• *Error:* " + EscapeMarkdown(message) + "\n")
	b.WriteString("• *Timestamp:* " + EscapeMarkdown(at.UTC().Format(domain.TimestampLayout)) + "\n\n")
	b.WriteString("Please check the system and contact the customer if needed\\.")
	return b.String()
}
