package brvmwatch

// AdviceRow is one conseil augmented with its derived metrics. The metrics
// are recomputed from the latest fetched fields every time the report is
// built; nil means undefined and renders as the placeholder.
type AdviceRow struct {
	Conseil
	Potential *Percent
	Risk      *Percent
	Ratio     *float64
	Progress  *Progress
}

// AdviceReport is the advice screen: every open conseil with its metrics.
type AdviceReport struct {
	Rows []AdviceRow
}

// NewAdviceReport derives the metric columns for each open conseil.
func NewAdviceReport(conseils []Conseil) *AdviceReport {
	rows := make([]AdviceRow, 0, len(conseils))
	for _, c := range conseils {
		row := AdviceRow{Conseil: c}
		if p, ok := Potential(c.Current, c.Target); ok {
			row.Potential = &p
		}
		if r, ok := Risk(c.Current, c.Stop); ok {
			row.Risk = &r
		}
		if ratio, ok := RiskReward(c.Current, c.Target, c.Stop); ok {
			row.Ratio = &ratio
		}
		if prog, ok := TargetProgress(c.Entry, c.Target, c.Current); ok {
			row.Progress = &prog
		}
		rows = append(rows, row)
	}
	return &AdviceReport{Rows: rows}
}
