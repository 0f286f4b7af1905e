package brvmwatch

import (
	"fmt"
	"sort"
	"strings"
)

// Column is one of the sortable columns of the securities table.
type Column int

const (
	BySymbol Column = iota
	ByTitle
	BySector
	ByClose
	ByVarDay
	ByVarYear
	ByVolume
	ByValue
	ByPER
	ByYield
)

var columnNames = map[string]Column{
	"symbol":  BySymbol,
	"title":   ByTitle,
	"sector":  BySector,
	"close":   ByClose,
	"var":     ByVarDay,
	"varyear": ByVarYear,
	"volume":  ByVolume,
	"value":   ByValue,
	"per":     ByPER,
	"yield":   ByYield,
}

// ParseColumn parses a user-supplied column name.
func ParseColumn(s string) (Column, error) {
	if c, ok := columnNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return BySymbol, fmt.Errorf("unknown column %q", s)
}

func (c Column) String() string {
	for name, col := range columnNames {
		if col == c {
			return name
		}
	}
	return "symbol"
}

// text reports whether the column compares lexicographically.
func (c Column) text() bool { return c == BySymbol || c == ByTitle || c == BySector }

// SortSpec is a sort column plus a direction.
type SortSpec struct {
	Column Column
	Desc   bool
}

// Toggle returns the sort spec after the user picks a column: picking the current
// column flips the direction, picking a new one resets to descending.
func (s SortSpec) Toggle(c Column) SortSpec {
	if c == s.Column {
		return SortSpec{Column: c, Desc: !s.Desc}
	}
	return SortSpec{Column: c, Desc: true}
}

// Filter returns the securities matching the query: the symbol contains the
// query with both sides uppercased, or the title contains it
// case-insensitively. An empty query matches everything. The input is never
// mutated.
func Filter(list []Security, query string) []Security {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]Security(nil), list...)
	}
	symbolQuery := strings.ToUpper(query)
	titleQuery := strings.ToLower(query)
	out := make([]Security, 0, len(list))
	for _, sec := range list {
		// both sides of the symbol comparison are normalized to uppercase
		if strings.Contains(strings.ToUpper(sec.Symbol), symbolQuery) ||
			strings.Contains(strings.ToLower(sec.Title), titleQuery) {
			out = append(out, sec)
		}
	}
	return out
}

// Sort returns a sorted copy of the securities. Records missing a value for
// the chosen column always rank last, in both directions; ties between two
// missing values keep their relative order (the sort is stable).
func Sort(list []Security, spec SortSpec) []Security {
	out := append([]Security(nil), list...)
	dir := 1
	if spec.Desc {
		dir = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !spec.Column.text() {
			// The null check runs before the direction multiplier: a record
			// missing the value ranks last whichever way the table is sorted.
			_, aok := numValue(a, spec.Column)
			_, bok := numValue(b, spec.Column)
			if aok != bok {
				return aok
			}
			if !aok {
				return false // two nulls keep their relative order
			}
		}
		return compare(a, b, spec.Column)*dir < 0
	})
	return out
}

// compare orders a before b (ascending) when negative. Both values are known
// to be present here.
func compare(a, b Security, col Column) int {
	if col.text() {
		return strings.Compare(textValue(a, col), textValue(b, col))
	}
	av, _ := numValue(a, col)
	bv, _ := numValue(b, col)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func textValue(s Security, col Column) string {
	switch col {
	case ByTitle:
		return strings.ToLower(s.Title)
	case BySector:
		return s.Sector.Label()
	default:
		return s.Symbol
	}
}

func numValue(s Security, col Column) (float64, bool) {
	switch col {
	case ByClose:
		if s.Close == nil {
			return 0, false
		}
		return s.Close.InexactFloat64(), true
	case ByVarDay:
		return deref(s.VarDay)
	case ByVarYear:
		return deref(s.VarYear)
	case ByVolume:
		return derefInt(s.Volume)
	case ByValue:
		return derefInt(s.Value)
	case ByPER:
		return deref(s.PER)
	case ByYield:
		return deref(s.NetYield)
	default:
		return 0, false
	}
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func derefInt(v *int64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}
