package brvmwatch

import "github.com/shopspring/decimal"

// Quantity is a number of shares.
type Quantity struct {
	value decimal.Decimal
}

func NewQuantity(value decimal.Decimal) Quantity {
	return Quantity{value: value}
}

func NewQuantityFromInt(n int64) Quantity {
	return Quantity{value: decimal.NewFromInt(n)}
}

func (q Quantity) Equal(r Quantity) bool { return q.value.Equal(r.value) }

func (q Quantity) IsZero() bool { return q.value.IsZero() }

func (q Quantity) IsPositive() bool { return q.value.IsPositive() }

func (q Quantity) String() string { return q.value.String() }
