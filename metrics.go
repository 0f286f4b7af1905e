package brvmwatch

import "github.com/shopspring/decimal"

// Derived metrics over conseil positions. All of them are pure functions of
// already-fetched fields; a missing input makes the result undefined rather
// than zero, because the display rounds gains and losses differently and a
// fabricated zero would flip the sign logic.

var hundred = decimal.NewFromInt(100)

// Potential returns the remaining upside to the target,
// (target - current) / current, as a percentage.
// Undefined unless both prices are present and current is non-zero.
func Potential(current, target *decimal.Decimal) (Percent, bool) {
	if current == nil || target == nil || current.IsZero() {
		return 0, false
	}
	p := target.Sub(*current).Div(*current).Mul(hundred)
	return Percent(p.InexactFloat64()), true
}

// Risk returns the downside to the stop loss,
// (current - stop) / current, as a percentage.
// Undefined unless both prices are present and current is non-zero.
func Risk(current, stop *decimal.Decimal) (Percent, bool) {
	if current == nil || stop == nil || current.IsZero() {
		return 0, false
	}
	r := current.Sub(*stop).Div(*current).Mul(hundred)
	return Percent(r.InexactFloat64()), true
}

// RiskReward returns |potential| / |risk|.
// A non-positive risk (the stop sits at or above the current price) makes
// the ratio meaningless, so it is suppressed rather than reported as
// infinite or negative.
func RiskReward(current, target, stop *decimal.Decimal) (float64, bool) {
	pot, ok := Potential(current, target)
	if !ok {
		return 0, false
	}
	risk, ok := Risk(current, stop)
	if !ok || risk <= 0 {
		return 0, false
	}
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(float64(pot)) / abs(float64(risk)), true
}

// Progress describes how far the price has travelled from entry to target.
type Progress struct {
	// Fraction is clamped to [0, 100] for display.
	Fraction Percent
	// Exceeded is true when the unclamped value passed 100: the target has
	// been beaten, which gets its own visual state.
	Exceeded bool
}

// TargetProgress returns (current - entry) / (target - entry) as a
// percentage. Undefined when any price is missing or when entry equals
// target (never divides by zero).
func TargetProgress(entry, target, current *decimal.Decimal) (Progress, bool) {
	if entry == nil || target == nil || current == nil {
		return Progress{}, false
	}
	span := target.Sub(*entry)
	if span.IsZero() {
		return Progress{}, false
	}
	raw := current.Sub(*entry).Div(span).Mul(hundred).InexactFloat64()
	p := Progress{Fraction: Percent(raw), Exceeded: raw > 100}
	if p.Fraction < 0 {
		p.Fraction = 0
	}
	if p.Fraction > 100 {
		p.Fraction = 100
	}
	return p, true
}

// PortfolioAggregate is the valuation of all open conseils taken together,
// each position weighted by the same fixed unit quantity.
type PortfolioAggregate struct {
	Invested Money
	Current  Money
	PL       Percent
	// Positions counts the conseils included; Excluded those skipped for
	// lack of a known current price (they enter neither sum).
	Positions int
	Excluded  int
}

// Aggregate values the conseil list at 'unit' shares per position.
// Positions without a current price are excluded from both sides of the sum.
// The result is undefined when nothing was invested.
func Aggregate(conseils []Conseil, unit Quantity) (PortfolioAggregate, bool) {
	var agg PortfolioAggregate
	for _, c := range conseils {
		if c.Current == nil || c.Entry == nil {
			agg.Excluded++
			continue
		}
		agg.Positions++
		agg.Invested = agg.Invested.Add(XOF(*c.Entry).Mul(unit))
		agg.Current = agg.Current.Add(XOF(*c.Current).Mul(unit))
	}
	if !agg.Invested.IsPositive() {
		return agg, false
	}
	pl := agg.Current.Sub(agg.Invested).Ratio(agg.Invested).Mul(hundred)
	agg.PL = Percent(pl.InexactFloat64())
	return agg, true
}
