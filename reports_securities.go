package brvmwatch

// SecuritiesReport is the securities screen: the full quote table filtered
// by the user's query and sorted by the selected column, plus an optional
// detail panel for one symbol.
type SecuritiesReport struct {
	Query  string
	Sort   SortSpec
	Rows   []Security
	Detail *SecurityDetail
}

// NewSecuritiesReport applies the filter then the sort; the fetched record
// set is left untouched.
func NewSecuritiesReport(list []Security, query string, spec SortSpec) *SecuritiesReport {
	return &SecuritiesReport{
		Query: query,
		Sort:  spec,
		Rows:  Sort(Filter(list, query), spec),
	}
}

// WithDetail attaches the detail panel for a selected symbol.
func (r *SecuritiesReport) WithDetail(d *SecurityDetail) *SecuritiesReport {
	r.Detail = d
	return r
}

// Selection is the currently opened detail panel. The securities screen owns
// it exclusively.
type Selection struct {
	Symbol string
}

// Toggle returns the selection after the user picks a symbol: picking the
// already-selected symbol closes the panel, anything else opens it there.
func (s Selection) Toggle(symbol string) Selection {
	if s.Symbol == symbol {
		return Selection{}
	}
	return Selection{Symbol: symbol}
}

// Open reports whether a detail panel is open.
func (s Selection) Open() bool { return s.Symbol != "" }
