package brvmwatch

import "fmt"

// Percent is a percentage value, e.g. Percent(1.5) renders as "1.50%".
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Positive reports the display polarity of the variation: zero counts as
// positive. A missing variation is its own neutral display state and is
// handled by the caller before reaching here.
func (p Percent) Positive() bool { return p >= 0 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString renders the percentage with an explicit sign, '+' included
// for zero.
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", p)
}
