package productcost

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	costrepo "order-backoffice/internal/repository/productcost"
)

type Service struct {
	repo costrepo.Repository
}

func New(repo costrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Upsert records the unit cost of an existing product.
func (s *Service) Upsert(ctx context.Context, productID string, cost decimal.Decimal) (*domain.ProductCost, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.Invalid("productId required")
	}
	if err := domain.CheckMoney("cost", cost); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, domain.ProductCost{ProductID: productID, Cost: cost})
}

func (s *Service) ListView(ctx context.Context) ([]domain.ProductCostView, error) {
	return s.repo.ListView(ctx)
}

func (s *Service) CostMap(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.repo.CostMap(ctx)
}
