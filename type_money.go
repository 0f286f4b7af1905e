package brvmwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount of CFA francs (XOF), the single currency of the BRVM.
// Capitalisation and traded-value columns are carried as Money; prices stay
// plain decimals because the bulletin quotes them without a currency mark.
type Money struct {
	value decimal.Decimal
}

// XOF creates a Money from a major-unit decimal amount.
func XOF(value decimal.Decimal) Money { return Money{value: value} }

// XOFFromInt creates a Money from an integer amount of francs.
func XOFFromInt(n int64) Money { return Money{value: decimal.NewFromInt(n)} }

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// Ratio returns m/n as a plain decimal. n must not be zero.
func (m Money) Ratio(n Money) decimal.Decimal { return m.value.Div(n.value) }

// String formats the amount the way the bulletin prints it: French grouping
// and the XOF grapheme, e.g. "12 345 678 CFA".
func (m Money) String() string {
	cur := money.GetCurrency(money.XOF)
	f := money.NewFormatter(cur.Fraction, ",", " ", cur.Grapheme, "1 $")
	return f.Format(m.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// SignedString is String with an explicit '+' on positive amounts.
func (m Money) SignedString() string {
	if m.value.Sign() > 0 {
		return "+" + m.String()
	}
	return m.String()
}
