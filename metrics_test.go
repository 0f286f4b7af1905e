package brvmwatch

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPotential(t *testing.T) {
	tests := []struct {
		name            string
		current, target string // "" means missing
		want            Percent
		defined         bool
	}{
		{name: "upside", current: "100", target: "120", want: 20, defined: true},
		{name: "downside", current: "100", target: "90", want: -10, defined: true},
		{name: "no current", current: "", target: "120", defined: false},
		{name: "no target", current: "100", target: "", defined: false},
	}
	for _, tc := range tests {
		got, ok := Potential(optDec(tc.current), optDec(tc.target))
		if ok != tc.defined {
			t.Errorf("%s: defined = %v, want %v", tc.name, ok, tc.defined)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("%s: Potential() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRiskUndefinedWithoutCurrent(t *testing.T) {
	if _, ok := Risk(nil, dec("95")); ok {
		t.Error("risk must be undefined when the current price is missing")
	}
}

func TestRiskReward(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, stop string
		want                  float64
		defined               bool
	}{
		// potential = +20%, risk = +5% -> ratio 4
		{name: "defined", current: "100", target: "120", stop: "95", want: 4, defined: true},
		// stop above current: risk = -5%, the ratio must be suppressed,
		// never infinite or negative.
		{name: "stop above current", current: "100", target: "120", stop: "105", defined: false},
		// stop at current: risk = 0.
		{name: "stop at current", current: "100", target: "120", stop: "100", defined: false},
		{name: "no current", current: "", target: "120", stop: "95", defined: false},
	}
	for _, tc := range tests {
		got, ok := RiskReward(optDec(tc.current), optDec(tc.target), optDec(tc.stop))
		if ok != tc.defined {
			t.Errorf("%s: defined = %v, want %v", tc.name, ok, tc.defined)
			continue
		}
		if ok && !Percent(got).Equal(Percent(tc.want)) {
			t.Errorf("%s: RiskReward() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTargetProgress(t *testing.T) {
	tests := []struct {
		name                   string
		entry, target, current string
		want                   Percent
		exceeded               bool
		defined                bool
	}{
		{name: "half way", entry: "100", target: "120", current: "110", want: 50, defined: true},
		{name: "clamped below", entry: "100", target: "120", current: "90", want: 0, defined: true},
		{name: "target exceeded", entry: "100", target: "120", current: "130", want: 100, exceeded: true, defined: true},
		{name: "entry equals target", entry: "100", target: "100", current: "110", defined: false},
		{name: "no current", entry: "100", target: "120", current: "", defined: false},
	}
	for _, tc := range tests {
		got, ok := TargetProgress(optDec(tc.entry), optDec(tc.target), optDec(tc.current))
		if ok != tc.defined {
			t.Errorf("%s: defined = %v, want %v", tc.name, ok, tc.defined)
			continue
		}
		if !ok {
			continue
		}
		if !got.Fraction.Equal(tc.want) || got.Exceeded != tc.exceeded {
			t.Errorf("%s: TargetProgress() = %+v, want fraction %v exceeded %v",
				tc.name, got, tc.want, tc.exceeded)
		}
	}
}

func TestAggregate(t *testing.T) {
	conseils := []Conseil{
		{Symbol: "SGBC", Entry: dec("100"), Current: dec("110")},
		{Symbol: "ORAC", Entry: dec("50"), Current: nil}, // excluded from both sums
	}
	agg, ok := Aggregate(conseils, NewQuantityFromInt(100))
	if !ok {
		t.Fatal("aggregate should be defined")
	}
	if !agg.Invested.Equal(XOFFromInt(10000)) {
		t.Errorf("Invested = %v, want 10 000 CFA", agg.Invested)
	}
	if !agg.Current.Equal(XOFFromInt(11000)) {
		t.Errorf("Current = %v, want 11 000 CFA", agg.Current)
	}
	if !agg.PL.Equal(10) {
		t.Errorf("PL = %v, want +10.00%%", agg.PL)
	}
	if agg.Positions != 1 || agg.Excluded != 1 {
		t.Errorf("Positions/Excluded = %d/%d, want 1/1", agg.Positions, agg.Excluded)
	}
}

func TestAggregateUndefinedWhenEmpty(t *testing.T) {
	if _, ok := Aggregate(nil, NewQuantityFromInt(100)); ok {
		t.Error("aggregate over no positions must be undefined")
	}
	// All positions priceless: nothing invested.
	conseils := []Conseil{{Symbol: "SGBC", Entry: dec("100")}}
	if _, ok := Aggregate(conseils, NewQuantityFromInt(100)); ok {
		t.Error("aggregate must be undefined when no position has a current price")
	}
}

// optDec returns nil for "", a decimal pointer otherwise.
func optDec(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	return dec(s)
}
