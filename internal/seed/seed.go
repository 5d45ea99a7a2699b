package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
)

type productSeed struct {
	ID   string
	Name string
	Cost string
}

var products = []productSeed{
	{ID: "P-001", Name: "Camiseta Básica", Cost: "20.00"},
	{ID: "P-002", Name: "Caneca Personalizada", Cost: "8.50"},
	{ID: "P-003", Name: "Adesivo Logo", Cost: "1.20"},
	{ID: "P-004", Name: "Boné Snapback", Cost: "15.00"},
	{ID: "P-005", Name: "Chaveiro Metal", Cost: "3.00"},
}

func item(productID, name string, qty int, price string) domain.OrderItem {
	return domain.OrderItem{ProductID: productID, ProductName: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

// Order totals are stored as recorded by the source platform, not recomputed.
var orders = []domain.Order{
	{
		ID: "seed-order-1", ExternalID: "ORD-10001",
		BuyerName: "Maria Souza", BuyerEmail: "maria@email.com",
		TotalAmount: decimal.RequireFromString("119.70"),
		CreatedAt:   time.Date(2025, 2, 10, 14, 32, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			item("P-001", "Camiseta Básica", 2, "49.90"),
			item("P-002", "Caneca Personalizada", 1, "19.90"),
		},
	},
	{
		ID: "seed-order-2", ExternalID: "ORD-10002",
		BuyerName: "João Silva", BuyerEmail: "joao@email.com",
		TotalAmount: decimal.RequireFromString("54.25"),
		CreatedAt:   time.Date(2025, 2, 11, 9, 15, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			item("P-003", "Adesivo Logo", 5, "4.85"),
			item("P-004", "Boné Snapback", 1, "30.00"),
		},
	},
	{
		ID: "seed-order-3", ExternalID: "ORD-10003",
		BuyerName: "Ana Costa", BuyerEmail: "ana@email.com",
		TotalAmount: decimal.RequireFromString("74.60"),
		CreatedAt:   time.Date(2025, 2, 12, 16, 45, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			item("P-005", "Chaveiro Metal", 3, "8.20"),
			item("P-001", "Camiseta Básica", 1, "49.90"),
		},
	},
}

// Apply inserts demo products, costs and orders. It is idempotent via ON CONFLICT
// and never overwrites rows that already exist.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}

	inserted := 0
	for _, o := range orders {
		ok, err := insertOrder(ctx, pool, o)
		if err != nil {
			return fmt.Errorf("seed order %s: %w", o.ExternalID, err)
		}
		if ok {
			inserted++
		}
	}

	logger.Info().Int("products", len(products)).Int("orders_inserted", inserted).Msg("seed applied")
	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	if _, err := pool.Exec(ctx, `
INSERT INTO products (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO NOTHING
`, p.ID, p.Name); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
INSERT INTO product_costs (product_id, cost) VALUES ($1, $2::numeric)
ON CONFLICT (product_id) DO NOTHING
`, p.ID, p.Cost)
	return err
}

// insertOrder writes the order and, only when the order row is new, its items.
func insertOrder(ctx context.Context, pool *pgxpool.Pool, o domain.Order) (bool, error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
INSERT INTO orders (id, external_id, buyer_name, buyer_email, total_amount, created_at)
VALUES ($1, $2, $3, $4, $5::numeric, $6)
ON CONFLICT (id) DO NOTHING
`, o.ID, o.ExternalID, o.BuyerName, o.BuyerEmail, o.TotalAmount.String(), o.CreatedAt)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5::numeric)
`, o.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice.String()); err != nil {
			return false, err
		}
	}
	return true, tx.Commit(ctx)
}
