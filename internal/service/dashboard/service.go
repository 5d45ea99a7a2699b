package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
)

type orderLister interface {
	List(ctx context.Context, r domain.DateRange) ([]domain.Order, error)
}

type costSource interface {
	CostMap(ctx context.Context) (map[string]decimal.Decimal, error)
}

type Service struct {
	orders orderLister
	costs  costSource
}

func New(orders orderLister, costs costSource) *Service {
	return &Service{orders: orders, costs: costs}
}

// Summary aggregates the orders created inside r using one order fetch and one cost fetch.
func (s *Service) Summary(ctx context.Context, r domain.DateRange) (domain.DashboardSummary, error) {
	orders, err := s.orders.List(ctx, r)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("list orders: %w", err)
	}
	costs, err := s.costs.CostMap(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("load costs: %w", err)
	}
	return Summarize(orders, costs), nil
}

// Summarize sums revenue and cost in full precision and rounds each figure
// once at the end. Items whose product has no cost contribute zero cost.
func Summarize(orders []domain.Order, costs map[string]decimal.Decimal) domain.DashboardSummary {
	revenue := decimal.Zero
	costTotal := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.TotalAmount)
		for _, item := range o.Items {
			cost, ok := costs[item.ProductID]
			if !ok {
				continue
			}
			costTotal = costTotal.Add(cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return domain.DashboardSummary{
		OrdersCount: len(orders),
		Revenue:     domain.RoundMoney(revenue),
		CostTotal:   domain.RoundMoney(costTotal),
		Profit:      domain.RoundMoney(revenue.Sub(costTotal)),
	}
}
