package order

import (
	"context"

	"order-backoffice/internal/domain"
)

type Repository interface {
	// Create writes the order and all of its items in one transaction.
	Create(ctx context.Context, o domain.Order) error
	// List returns orders created inside r, newest first, with their items.
	List(ctx context.Context, r domain.DateRange) ([]domain.Order, error)
}
