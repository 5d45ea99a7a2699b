package productcost

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"order-backoffice/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Upsert(ctx context.Context, c domain.ProductCost) (*domain.ProductCost, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductCost), args.Error(1)
}

func (m *mockRepo) ListView(ctx context.Context) ([]domain.ProductCostView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductCostView), args.Error(1)
}

func (m *mockRepo) CostMap(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func TestServiceUpsert_PassesThrough(t *testing.T) {
	repo := new(mockRepo)
	cost := decimal.RequireFromString("10")
	want := &domain.ProductCost{ProductID: "P1", Cost: cost}
	repo.On("Upsert", mock.Anything, domain.ProductCost{ProductID: "P1", Cost: cost}).Return(want, nil).Once()

	got, err := New(repo).Upsert(context.Background(), " P1 ", cost)
	require.NoError(t, err)
	assert.Same(t, want, got)
	repo.AssertExpectations(t)
}

func TestServiceUpsert_NotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("domain.ProductCost")).Return(nil, domain.ErrNotFound).Once()

	_, err := New(repo).Upsert(context.Background(), "ghost", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestServiceUpsert_Validation(t *testing.T) {
	repo := new(mockRepo)
	svc := New(repo)

	_, err := svc.Upsert(context.Background(), "P1", decimal.RequireFromString("-0.01"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// NUMERIC(12,2) would round 0.005 to 0.01 on write.
	_, err = svc.Upsert(context.Background(), "P1", decimal.RequireFromString("0.005"))
	require.Error(t, err)
	assert.EqualError(t, err, "cost must have at most 2 decimal places")

	_, err = svc.Upsert(context.Background(), "P1", decimal.RequireFromString("10000000000"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Upsert(context.Background(), " ", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestServiceUpsert_ZeroCostAllowed(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(&domain.ProductCost{ProductID: "P1"}, nil).Once()

	_, err := New(repo).Upsert(context.Background(), "P1", decimal.Zero)
	require.NoError(t, err)
}
