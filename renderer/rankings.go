package renderer

import (
	brvmwatch "github.com/esmelobi/brvm-watch"
)

// Rankings is the view of the pépites screen.
type Rankings struct {
	Days int
	Top  []RankingRow
	Flop []RankingRow
	All  []RankingRow
}

// RankingRow is one backend-computed ranking line, re-displayed as supplied.
type RankingRow struct {
	Symbol    string
	Title     string
	Sector    string
	Sessions  int
	Volume    string
	Badge     string
	AvgVar    string
	LastClose string
}

func newRankingRow(e brvmwatch.RankingEntry) RankingRow {
	avg := e.AvgVar
	return RankingRow{
		Symbol:    e.Symbol,
		Title:     e.Title,
		Sector:    e.Sector.String(),
		Sessions:  e.Sessions,
		Volume:    brvmwatch.FormatInt(&e.TotalVolume),
		Badge:     badge(&avg),
		AvgVar:    brvmwatch.FormatPercent(&avg),
		LastClose: brvmwatch.FormatNumber(e.LastClose, 0),
	}
}

// NewRankings maps a rankings report to its view.
func NewRankings(r *brvmwatch.RankingsReport) *Rankings {
	v := &Rankings{Days: r.Days}
	for _, e := range r.Top {
		v.Top = append(v.Top, newRankingRow(e))
	}
	for _, e := range r.Flop {
		v.Flop = append(v.Flop, newRankingRow(e))
	}
	for _, e := range r.All {
		v.All = append(v.All, newRankingRow(e))
	}
	return v
}

// RenderRankings renders the pépites screen to markdown.
func RenderRankings(r *brvmwatch.RankingsReport) string {
	return render("rankings.md", NewRankings(r))
}
