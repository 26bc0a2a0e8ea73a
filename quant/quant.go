// Package quant snaps real values onto multiples of a step.
//
// Steps in (0, 1] snap. A step greater than one disables snapping so callers
// can express continuous input with the same knob, and a step of zero or less
// collapses every number to zero.
package quant

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// TieBreak decides where a number exactly halfway between two step
// multiples lands.
type TieBreak uint8

const (
	// TieUp snaps halfway numbers to the larger multiple.
	TieUp TieBreak = iota
	// TieEven snaps halfway numbers to the multiple with an even quotient.
	TieEven
)

var tieNames = [...]string{TieUp: "up", TieEven: "even"}

func (t TieBreak) String() string {
	if int(t) < len(tieNames) {
		return tieNames[t]
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// Set implements flag.Value.
func (t *TieBreak) Set(s string) error {
	for i, name := range tieNames {
		if name == s {
			*t = TieBreak(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tie-break %q", s)
}

// RoundToStep returns number snapped to the nearest multiple of step.
func RoundToStep[T constraints.Float](number, step T, tie TieBreak) T {
	switch {
	case step <= 0:
		return 0
	case step > 1:
		return number
	}

	rem := T(math.Mod(float64(number), float64(step)))
	up := step - rem
	switch {
	case up < rem:
		return number + up
	case up > rem:
		return number - rem
	}

	// exactly halfway
	if tie == TieEven {
		q := math.Trunc(float64(number) / float64(step))
		if math.Mod(q, 2) == 0 {
			return number - rem
		}
	}
	return number + up
}
