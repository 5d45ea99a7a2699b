package pgconv

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal(t *testing.T) {
	d, err := Decimal("49.90")
	require.NoError(t, err)
	assert.Equal(t, "49.90", d.StringFixed(2))

	_, err = Decimal("abc")
	require.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, IsCheckViolation(fmt.Errorf("item 0: %w", &pgconn.PgError{Code: pgerrcode.CheckViolation})))
	assert.False(t, IsCheckViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}

func TestIsOutOfRange(t *testing.T) {
	assert.True(t, IsOutOfRange(fmt.Errorf("insert order: %w", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange})))
	assert.False(t, IsOutOfRange(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.False(t, IsOutOfRange(errors.New("boom")))
}
