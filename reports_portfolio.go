package brvmwatch

// PortfolioReport is the portfolio screen: the aggregate valuation of all
// open conseils plus the raw backend database statistics, shown unmodified.
type PortfolioReport struct {
	Unit      Quantity
	Aggregate PortfolioAggregate
	// Defined is false when no position has a known current price: the
	// aggregate P/L is undefined, not zero.
	Defined bool
	Stats   Stats
}

// NewPortfolioReport values the conseils at 'unit' shares per position.
// The unit is an explicit parameter of the valuation, not an assumption
// buried in the computation.
func NewPortfolioReport(conseils []Conseil, unit Quantity, stats Stats) *PortfolioReport {
	agg, ok := Aggregate(conseils, unit)
	return &PortfolioReport{
		Unit:      unit,
		Aggregate: agg,
		Defined:   ok,
		Stats:     stats,
	}
}
