package brvmwatch

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RankingEntry is one line of the backend-computed performance ranking over
// a trailing window. The client re-displays these as supplied, it never
// recomputes them.
type RankingEntry struct {
	Symbol      string           `json:"symbole"`
	Title       string           `json:"titre"`
	Sector      Sector           `json:"secteur_code"`
	Sessions    int              `json:"nb_seances"`
	TotalVolume int64            `json:"volume_total"`
	AvgVar      float64          `json:"variation_moyenne"`
	LastClose   *decimal.Decimal `json:"dernier_cours"`
}

// Pepites is the full ranking response: best and worst performers plus the
// complete comparison set for the bar chart.
type Pepites struct {
	Days int            `json:"jours"`
	Top  []RankingEntry `json:"top"`
	Flop []RankingEntry `json:"flop"`
	All  []RankingEntry `json:"toutes"`
}

// rankingDays are the trailing windows the backend accepts for pépites.
// The window is a request parameter, not client-side computed state.
var rankingDays = []int{5, 7, 14, 30}

// ParseRankingDays validates a requested pépites window.
func ParseRankingDays(n int) (int, error) {
	for _, d := range rankingDays {
		if d == n {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unsupported ranking window %d days (want one of %v)", n, rankingDays)
}
