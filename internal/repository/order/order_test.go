package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"order-backoffice/internal/domain"
	"order-backoffice/internal/repository/pgtest"
)

func sampleOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:          id,
		ExternalID:  "EXT-" + id,
		BuyerName:   "Maria Souza",
		BuyerEmail:  "maria@email.com",
		TotalAmount: decimal.RequireFromString("119.70"),
		CreatedAt:   createdAt,
		Items: []domain.OrderItem{
			{ProductID: "P-001", ProductName: "Shirt", Quantity: 2, UnitPrice: decimal.RequireFromString("49.90")},
			{ProductID: "P-002", ProductName: "Mug", Quantity: 1, UnitPrice: decimal.RequireFromString("19.90")},
		},
	}
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestPostgres_CreateAndListRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	want := sampleOrder("o1", time.Date(2025, 2, 10, 14, 32, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(want, got[0], decimalEqual); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPostgres_CreateIsAtomic(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	bad := sampleOrder("o-bad", time.Now().UTC())
	bad.Items[1].Quantity = 0 // violates the quantity check constraint

	err := repo.Create(ctx, bad)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	var orders, items int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&orders))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM order_items`).Scan(&items))
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestPostgres_CreateOverflowIsValidation(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	bad := sampleOrder("o-huge", time.Now().UTC())
	bad.Items[0].UnitPrice = decimal.RequireFromString("10000000000")

	err := repo.Create(ctx, bad)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "got %v", err)

	var orders int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&orders))
	assert.Zero(t, orders)
}

func TestPostgres_ListFiltersInclusiveAndSortsDesc(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	day := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	end := day.Add(24*time.Hour - time.Millisecond)
	require.NoError(t, repo.Create(ctx, sampleOrder("before", day.Add(-time.Millisecond))))
	require.NoError(t, repo.Create(ctx, sampleOrder("at-start", day)))
	require.NoError(t, repo.Create(ctx, sampleOrder("midday", day.Add(12*time.Hour))))
	require.NoError(t, repo.Create(ctx, sampleOrder("at-end", end)))
	require.NoError(t, repo.Create(ctx, sampleOrder("after", end.Add(time.Millisecond))))

	got, err := repo.List(ctx, domain.DateRange{Start: &day, End: &end})
	require.NoError(t, err)

	var ids []string
	for _, o := range got {
		ids = append(ids, o.ID)
		assert.Len(t, o.Items, 2)
	}
	assert.Equal(t, []string{"at-end", "midday", "at-start"}, ids)

	all, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "after", all[0].ID)
}
