package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductCost is the unit cost basis for a product.
type ProductCost struct {
	ProductID string
	Cost      decimal.Decimal
}

// ProductCostView is one row per product; Cost is nil when no cost was recorded.
type ProductCostView struct {
	ProductID   string
	ProductName string
	Cost        *decimal.Decimal
}
