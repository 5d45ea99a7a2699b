package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest item quantity the INTEGER column holds.
const MaxQuantity = math.MaxInt32

// moneyLimit is the smallest amount NUMERIC(12,2) cannot hold.
var moneyLimit = decimal.New(1, 10)

// CheckMoney returns a ValidationError naming field when d is negative, has
// more than 2 decimal places, or does not fit NUMERIC(12,2).
func CheckMoney(field string, d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return Invalid("%s must not be negative", field)
	case !d.Equal(d.Round(2)):
		return Invalid("%s must have at most 2 decimal places", field)
	case d.GreaterThanOrEqual(moneyLimit):
		return Invalid("%s must be less than %s", field, moneyLimit.String())
	}
	return nil
}
