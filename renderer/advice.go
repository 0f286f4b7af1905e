package renderer

import (
	"fmt"

	brvmwatch "github.com/esmelobi/brvm-watch"
)

// Advice is the view of the conseils screen.
type Advice struct {
	Rows []AdviceRow
}

// AdviceRow is one conseil with its derived metric columns.
type AdviceRow struct {
	ID        int64
	Date      string
	Symbol    string
	Title     string
	Type      string
	Entry     string
	Target    string
	Stop      string
	Current   string
	Latent    string
	Potential string
	Risk      string
	Ratio     string
	Progress  string
	Rationale string
}

// NewAdvice maps an advice report to its view. Undefined metrics render as
// the placeholder, never as zero.
func NewAdvice(r *brvmwatch.AdviceReport) *Advice {
	v := &Advice{}
	for _, row := range r.Rows {
		ar := AdviceRow{
			ID:        row.ID,
			Date:      row.Date.String(),
			Symbol:    row.Symbol,
			Title:     row.Title,
			Type:      row.Type.String(),
			Entry:     brvmwatch.FormatNumber(row.Entry, 0),
			Target:    brvmwatch.FormatNumber(row.Target, 0),
			Stop:      brvmwatch.FormatNumber(row.Stop, 0),
			Current:   brvmwatch.FormatNumber(row.Current, 0),
			Latent:    brvmwatch.FormatPercent(row.Latent),
			Potential: brvmwatch.Placeholder,
			Risk:      brvmwatch.Placeholder,
			Ratio:     brvmwatch.Placeholder,
			Progress:  brvmwatch.Placeholder,
			Rationale: row.Rationale,
		}
		if row.Potential != nil {
			ar.Potential = row.Potential.SignedString()
		}
		if row.Risk != nil {
			ar.Risk = row.Risk.SignedString()
		}
		if row.Ratio != nil {
			ar.Ratio = fmt.Sprintf("%.2f", *row.Ratio)
		}
		if p := row.Progress; p != nil {
			ar.Progress = fmt.Sprintf("%.0f%%", float64(p.Fraction))
			if p.Exceeded {
				ar.Progress += " ✓ target exceeded"
			}
		}
		v.Rows = append(v.Rows, ar)
	}
	return v
}

// RenderAdvice renders the conseils screen to markdown.
func RenderAdvice(r *brvmwatch.AdviceReport) string {
	return render("advice.md", NewAdvice(r))
}
