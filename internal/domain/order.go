package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable purchase record. Items are written together with the order.
type Order struct {
	ID          string
	ExternalID  string
	BuyerName   string
	BuyerEmail  string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Items       []OrderItem
}

// OrderItem keeps the product name as it was when the order was placed.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal returns unitPrice * quantity without rounding.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal sums the line totals and rounds the result to cents.
func (o Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return RoundMoney(sum)
}

// RoundMoney rounds to 2 decimal places, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
