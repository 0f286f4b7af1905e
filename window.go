package brvmwatch

import (
	"fmt"
	"strconv"
)

// Window is a named trailing slice of the séance series, used to bound the
// chart data volume. Windowing never aggregates and never reorders: each
// point stays a full Seance.
type Window int

const (
	Sessions10 Window = 10
	Sessions21 Window = 21
	Sessions60 Window = 60
)

var chartWindows = []Window{Sessions10, Sessions21, Sessions60}

// ParseWindow parses a chart window size.
func ParseWindow(s string) (Window, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid window %q: %w", s, err)
	}
	for _, w := range chartWindows {
		if int(w) == n {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unsupported window %d sessions (want one of %v)", n, chartWindows)
}

func (w Window) String() string { return strconv.Itoa(int(w)) }

// Trailing returns the last w séances of a chronological series, or the
// whole series if shorter, preserving order. The input is not copied: the
// slice aliases the original, which is safe because fetched records are
// never mutated.
func (w Window) Trailing(seances []Seance) []Seance {
	n := int(w)
	if n >= len(seances) {
		return seances
	}
	return seances[len(seances)-n:]
}
