package brvmwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Placeholder is displayed wherever a value is missing from the feed.
// Missing is a normal state on the BRVM: a security that did not trade has no
// close, a fresh conseil has no current price yet.
const Placeholder = "—"

// FormatNumber renders a decimal with French locale grouping (space
// thousands, comma decimal) and the requested number of decimals.
// A nil value renders as the Placeholder. Every numeric display in the
// dashboard goes through here so that null handling stays centralized.
func FormatNumber(v *decimal.Decimal, decimals int) string {
	if v == nil {
		return Placeholder
	}
	f := money.NewFormatter(decimals, ",", " ", "", "1")
	return f.Format(v.Shift(int32(decimals)).Round(0).IntPart())
}

// FormatFloat is FormatNumber for a plain float pointer.
func FormatFloat(v *float64, decimals int) string {
	if v == nil {
		return Placeholder
	}
	d := decimal.NewFromFloat(*v)
	return FormatNumber(&d, decimals)
}

// FormatInt renders an integer count with French locale grouping, or the
// Placeholder when missing.
func FormatInt(v *int64) string {
	if v == nil {
		return Placeholder
	}
	d := decimal.NewFromInt(*v)
	return FormatNumber(&d, 0)
}

// FormatPercent renders a signed percentage ('+' explicit for non-negative
// values), or the Placeholder when missing.
func FormatPercent(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return Percent(*v).SignedString()
}

// FormatMoney renders an integer franc amount, or the Placeholder.
func FormatMoney(v *int64) string {
	if v == nil {
		return Placeholder
	}
	return XOFFromInt(*v).String()
}
