package brvmwatch

// RankingsReport is the pépites screen. It purely re-displays the
// backend-supplied top and flop lists and the full comparison set; changing
// the trailing window re-fetches rather than re-derives.
type RankingsReport struct {
	Pepites
}

func NewRankingsReport(p Pepites) *RankingsReport {
	return &RankingsReport{Pepites: p}
}
