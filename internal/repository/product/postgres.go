package product

import (
	"context"
	"errors"
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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With().Str("repo", "product").Logger()}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name)
VALUES ($1, $2)
RETURNING id, name
`
	var out domain.Product
	if err := r.pool.QueryRow(ctx, q, p.ID, p.Name).Scan(&out.ID, &out.Name); err != nil {
		if pgconv.IsUniqueViolation(err) {
			r.logger.Info().Str("product_id", p.ID).Msg("create: id taken")
			return nil, fmt.Errorf("product %q: %w", p.ID, domain.ErrConflict)
		}
		r.logger.Error().Err(err).Str("product_id", p.ID).Msg("create failed")
		return nil, err
	}
	r.logger.Debug().Str("product_id", out.ID).Msg("created")
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name
FROM products
WHERE id = $1
`
	var p domain.Product
	if err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("get failed")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name
FROM products
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	defer rows.Close()

	result := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("list rows failed")
		return nil, err
	}
	r.logger.Debug().Int("count", len(result)).Msg("listed")
	return result, nil
}
