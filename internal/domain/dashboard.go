package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the orders inside a date range.
type DashboardSummary struct {
	OrdersCount int
	Revenue     decimal.Decimal
	CostTotal   decimal.Decimal
	Profit      decimal.Decimal
}
