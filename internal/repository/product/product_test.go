package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"order-backoffice/internal/domain"
	"order-backoffice/internal/repository/pgtest"
)

func TestPostgres_CreateAndList(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	_, err := repo.Create(ctx, domain.Product{ID: "P-002", Name: "Mug"})
	require.NoError(t, err)
	created, err := repo.Create(ctx, domain.Product{ID: "P-001", Name: "Shirt"})
	require.NoError(t, err)
	assert.Equal(t, domain.Product{ID: "P-001", Name: "Shirt"}, *created)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P-001", list[0].ID)
	assert.Equal(t, "P-002", list[1].ID)

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestPostgres_CreateConflict(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	_, err := repo.Create(ctx, domain.Product{ID: "P-001", Name: "Shirt"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.Product{ID: "P-001", Name: "Other"})
	require.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)

	got, err := repo.GetByID(ctx, "P-001")
	require.NoError(t, err)
	assert.Equal(t, "Shirt", got.Name)
}

func TestPostgres_GetMissing(t *testing.T) {
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
