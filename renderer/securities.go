package renderer

import (
	brvmwatch "github.com/esmelobi/brvm-watch"
)

// Securities is the view of the securities screen.
type Securities struct {
	Query  string
	Sort   string
	Rows   []SecurityRow
	Detail *SecurityDetail
}

// SecurityRow is one line of the quote table.
type SecurityRow struct {
	Symbol  string
	Title   string
	Sector  string
	Close   string
	Badge   string
	VarDay  string
	VarYear string
	Volume  string
	Value   string
	PER     string
	Yield   string
}

// ChartPoint is one point of a price or index series.
type ChartPoint struct {
	Date  string
	Value string
}

// SecurityDetail is the opened detail panel.
type SecurityDetail struct {
	Symbol       string
	Title        string
	Sector       string
	Compartment  string
	Close        string
	Previous     string
	Reference    string
	Badge        string
	VarDay       string
	VarYear      string
	Dividend     string
	DividendDate string
	Yield        string
	PER          string
	History      []ChartPoint
}

func newSecurityRow(s brvmwatch.Security) SecurityRow {
	return SecurityRow{
		Symbol:  s.Symbol,
		Title:   s.Title,
		Sector:  s.Sector.String(),
		Close:   brvmwatch.FormatNumber(s.Close, 0),
		Badge:   badge(s.VarDay),
		VarDay:  brvmwatch.FormatPercent(s.VarDay),
		VarYear: brvmwatch.FormatPercent(s.VarYear),
		Volume:  brvmwatch.FormatInt(s.Volume),
		Value:   brvmwatch.FormatMoney(s.Value),
		PER:     brvmwatch.FormatFloat(s.PER, 1),
		Yield:   brvmwatch.FormatPercent(s.NetYield),
	}
}

// NewSecurities maps a securities report to its view.
func NewSecurities(r *brvmwatch.SecuritiesReport) *Securities {
	v := &Securities{
		Query: r.Query,
		Sort:  r.Sort.Column.String(),
	}
	if r.Sort.Desc {
		v.Sort += " ↓"
	} else {
		v.Sort += " ↑"
	}
	for _, s := range r.Rows {
		v.Rows = append(v.Rows, newSecurityRow(s))
	}
	if d := r.Detail; d != nil {
		detail := &SecurityDetail{
			Symbol:       d.Symbol,
			Title:        d.Title,
			Sector:       d.Sector.Label(),
			Compartment:  d.Compartment,
			Close:        brvmwatch.FormatNumber(d.Close, 0),
			Previous:     brvmwatch.FormatNumber(d.Previous, 0),
			Reference:    brvmwatch.FormatNumber(d.Reference, 0),
			Badge:        badge(d.VarDay),
			VarDay:       brvmwatch.FormatPercent(d.VarDay),
			VarYear:      brvmwatch.FormatPercent(d.VarYear),
			Dividend:     brvmwatch.FormatNumber(d.Dividend, 0),
			Yield:        brvmwatch.FormatPercent(d.NetYield),
			PER:          brvmwatch.FormatFloat(d.PER, 1),
			DividendDate: brvmwatch.Placeholder,
		}
		if d.DividendDate != nil {
			detail.DividendDate = d.DividendDate.String()
		}
		for day, price := range d.PriceHistory().Values() {
			p := price
			detail.History = append(detail.History, ChartPoint{
				Date:  day.String(),
				Value: brvmwatch.FormatNumber(&p, 0),
			})
		}
		v.Detail = detail
	}
	return v
}

// RenderSecurities renders the securities screen to markdown.
func RenderSecurities(r *brvmwatch.SecuritiesReport) string {
	return render("securities.md", NewSecurities(r))
}
