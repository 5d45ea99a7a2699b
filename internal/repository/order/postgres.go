package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"order-backoffice/internal/domain"
	"order-backoffice/internal/logging"
	"order-backoffice/internal/repository/pgconv"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With().Str("repo", "order").Logger()}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, external_id, buyer_name, buyer_email, total_amount, created_at)
VALUES ($1, $2, $3, $4, $5::numeric, $6)
`, o.ID, o.ExternalID, o.BuyerName, o.BuyerEmail, o.TotalAmount.String(), o.CreatedAt.UTC()); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return fmt.Errorf("order %q: %w", o.ID, domain.ErrConflict)
		}
		if pgconv.IsOutOfRange(err) {
			return domain.Invalid("totalAmount does not fit NUMERIC(12,2)")
		}
		r.logger.Error().Err(err).Str("order_id", o.ID).Msg("insert order failed")
		return fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range o.Items {
		batch.Queue(`
INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5::numeric)
`, o.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice.String())
	}
	results := tx.SendBatch(ctx, batch)
	for i := range o.Items {
		if _, err := results.Exec(); err != nil {
			results.Close()
			if pgconv.IsCheckViolation(err) {
				return domain.Invalid("items[%d]: quantity must be at least 1 and unitPrice must not be negative", i)
			}
			if pgconv.IsOutOfRange(err) {
				return domain.Invalid("items[%d]: unitPrice does not fit NUMERIC(12,2)", i)
			}
			r.logger.Error().Err(err).Str("order_id", o.ID).Int("item", i).Msg("insert item failed")
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("order_id", o.ID).Msg("commit failed")
		return fmt.Errorf("commit: %w", err)
	}
	r.logger.Info().
		Str("order_id", o.ID).
		Str("external_id", o.ExternalID).
		Int("items", len(o.Items)).
		Str("total", o.TotalAmount.StringFixed(2)).
		Msg("order stored")
	return nil
}

func (r *postgresRepo) List(ctx context.Context, dr domain.DateRange) ([]domain.Order, error) {
	const ordersQuery = `
SELECT id, external_id, buyer_name, buyer_email, total_amount::text, created_at
FROM orders
WHERE ($1::timestamptz IS NULL OR created_at >= $1)
  AND ($2::timestamptz IS NULL OR created_at <= $2)
ORDER BY created_at DESC, id
`
	rows, err := r.pool.Query(ctx, ordersQuery, dr.Start, dr.End)
	if err != nil {
		r.logger.Error().Err(err).Msg("list orders failed")
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := make(map[string]int)
	var ids []string
	for rows.Next() {
		var (
			o        domain.Order
			totalStr string
		)
		if err := rows.Scan(&o.ID, &o.ExternalID, &o.BuyerName, &o.BuyerEmail, &totalStr, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.TotalAmount, err = pgconv.Decimal(totalStr); err != nil {
			return nil, err
		}
		o.CreatedAt = o.CreatedAt.UTC()
		o.Items = []domain.OrderItem{}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	const itemsQuery = `
SELECT order_id, product_id, product_name, quantity, unit_price::text
FROM order_items
WHERE order_id = ANY($1)
ORDER BY id
`
	itemRows, err := r.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("orders", len(ids)).Msg("list items failed")
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID  string
			item     domain.OrderItem
			priceStr string
		)
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &priceStr); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = pgconv.Decimal(priceStr); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug().Int("count", len(orders)).Msg("listed orders")
	return orders, nil
}
