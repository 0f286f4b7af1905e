package brvmwatch

import "fmt"

// MarketReport is the market screen: the most recent séance's headline
// figures displayed as fetched, plus a windowed slice of the session history
// for the chart. Index values are never recomputed client-side.
type MarketReport struct {
	Latest Seance
	Window Window
	Chart  []Seance
}

// NewMarketReport shapes a chronological séance series for the market
// screen. The series must be non-empty.
func NewMarketReport(seances []Seance, w Window) (*MarketReport, error) {
	if len(seances) == 0 {
		return nil, fmt.Errorf("no séance history available")
	}
	return &MarketReport{
		Latest: seances[len(seances)-1],
		Window: w,
		Chart:  w.Trailing(seances),
	}, nil
}
