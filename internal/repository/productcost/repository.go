package productcost

import (
	"context"

	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
)

type Repository interface {
	// Upsert stores the cost for an existing product. It returns
	// domain.ErrNotFound, leaving the table untouched, when the product is unknown.
	Upsert(ctx context.Context, c domain.ProductCost) (*domain.ProductCost, error)
	// ListView returns one row per product with a nil cost where none is recorded.
	ListView(ctx context.Context) ([]domain.ProductCostView, error)
	// CostMap returns every recorded cost keyed by product id.
	CostMap(ctx context.Context) (map[string]decimal.Decimal, error)
}
