package productcost

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"order-backoffice/internal/domain"
	"order-backoffice/internal/logging"
	"order-backoffice/internal/repository/pgconv"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With().Str("repo", "product_cost").Logger()}
}

// The INSERT ... SELECT only yields a row when the product exists, so the
// existence check and the write happen in one statement.
func (r *postgresRepo) Upsert(ctx context.Context, c domain.ProductCost) (*domain.ProductCost, error) {
	const q = `
INSERT INTO product_costs (product_id, cost)
SELECT p.id, $2::numeric
FROM products p
WHERE p.id = $1
ON CONFLICT (product_id) DO UPDATE SET
    cost = EXCLUDED.cost,
    updated_at = now()
RETURNING product_id, cost::text
`
	var (
		out     domain.ProductCost
		costStr string
	)
	err := r.pool.QueryRow(ctx, q, c.ProductID, c.Cost.String()).Scan(&out.ProductID, &costStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Info().Str("product_id", c.ProductID).Msg("upsert: product not found")
			return nil, fmt.Errorf("product %q: %w", c.ProductID, domain.ErrNotFound)
		}
		if pgconv.IsOutOfRange(err) {
			return nil, domain.Invalid("cost does not fit NUMERIC(12,2)")
		}
		r.logger.Error().Err(err).Str("product_id", c.ProductID).Msg("upsert failed")
		return nil, err
	}
	if out.Cost, err = pgconv.Decimal(costStr); err != nil {
		return nil, err
	}
	r.logger.Debug().Str("product_id", out.ProductID).Str("cost", costStr).Msg("upserted")
	return &out, nil
}

func (r *postgresRepo) ListView(ctx context.Context) ([]domain.ProductCostView, error) {
	const q = `
SELECT p.id, p.name, pc.cost::text
FROM products p
LEFT JOIN product_costs pc ON pc.product_id = p.id
ORDER BY p.id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list view failed")
		return nil, err
	}
	defer rows.Close()

	result := []domain.ProductCostView{}
	for rows.Next() {
		var (
			v       domain.ProductCostView
			costStr *string
		)
		if err := rows.Scan(&v.ProductID, &v.ProductName, &costStr); err != nil {
			return nil, err
		}
		if costStr != nil {
			cost, err := pgconv.Decimal(*costStr)
			if err != nil {
				return nil, err
			}
			v.Cost = &cost
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) CostMap(ctx context.Context) (map[string]decimal.Decimal, error) {
	const q = `
SELECT product_id, cost::text
FROM product_costs
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("cost map failed")
		return nil, err
	}
	defer rows.Close()

	costs := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id, costStr string
		if err := rows.Scan(&id, &costStr); err != nil {
			return nil, err
		}
		cost, err := pgconv.Decimal(costStr)
		if err != nil {
			return nil, err
		}
		costs[id] = cost
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return costs, nil
}
