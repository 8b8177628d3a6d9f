package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderValidator(t *testing.T) {
	validator := NewOrderValidator()

	testCases := []struct {
		name      string
		mutate    func(s *OrderSubmission)
		wantField string
	}{
		{name: "valid submission", mutate: func(*OrderSubmission) {}},
		{name: "missing name", mutate: func(s *OrderSubmission) { s.CustomerName = "" }, wantField: "customer_name"},
		{name: "name too long", mutate: func(s *OrderSubmission) { s.CustomerName = strings.Repeat("a", 101) }, wantField: "customer_name"},
		{name: "email without tld", mutate: func(s *OrderSubmission) { s.CustomerEmail = "jane@example" }, wantField: "customer_email"},
		{name: "email too long", mutate: func(s *OrderSubmission) { s.CustomerEmail = strings.Repeat("a", 100000) + "@example.com" }, wantField: "customer_email"},
		{name: "short phone", mutate: func(s *OrderSubmission) { s.CustomerPhone = "12345" }, wantField: "customer_phone"},
		{name: "long phone", mutate: func(s *OrderSubmission) { s.CustomerPhone = "1234567890123456" }, wantField: "customer_phone"},
		{name: "short address", mutate: func(s *OrderSubmission) { s.CustomerAddress = "12 St" }, wantField: "customer_address"},
		{name: "missing product id", mutate: func(s *OrderSubmission) { s.ProductID = nil }, wantField: "product_id"},
		{name: "zero product id is present", mutate: func(s *OrderSubmission) { s.ProductID = intPtr(0) }},
		{name: "missing product name", mutate: func(s *OrderSubmission) { s.ProductName = "" }, wantField: "product_name"},
		{name: "quantity above 100", mutate: func(s *OrderSubmission) { s.Quantity = intPtr(101) }, wantField: "quantity"},
		{name: "quantity 100 allowed", mutate: func(s *OrderSubmission) { s.Quantity = intPtr(100) }},
		{name: "notes too long", mutate: func(s *OrderSubmission) { s.Notes = strings.Repeat("n", 501) }, wantField: "notes"},
		{name: "honeypot filled", mutate: func(s *OrderSubmission) { s.Honeypot = "spam" }, wantField: "honeypot"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			submission := validSubmission()
			tc.mutate(&submission)

			err := validator.Validate(submission)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.wantField, verr.Fields[0].Field)
			assert.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}

func TestNewOrder_FormatsTimestampInUTC(t *testing.T) {
	local := time.Date(2026, 1, 2, 10, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))

	order := NewOrder(validSubmission(), "id-1", local)

	assert.Equal(t, "2026-01-02 04:34:05", order.Timestamp)
	assert.Equal(t, "id-1", order.ID)
	assert.Equal(t, 1, order.Product.ID)
	assert.Equal(t, "Red", order.Product.Color)
}
