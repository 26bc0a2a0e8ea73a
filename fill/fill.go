// Package fill resolves how much of each item in a rating row appears filled.
package fill

import (
	"fmt"
	"math"

	"dasa.cc/rating/quant"
)

// Policy selects how the boundary item between filled and empty items is
// drawn.
type Policy uint8

const (
	// Continuous fills the boundary item by the exact fractional part of the
	// value.
	Continuous Policy = iota
	// Stepped snaps the boundary fraction to the resolver's step first.
	Stepped
)

var policyNames = [...]string{Continuous: "continuous", Stepped: "stepped"}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Set implements flag.Value.
func (p *Policy) Set(s string) error {
	for i, name := range policyNames {
		if name == s {
			*p = Policy(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fill policy %q", s)
}

// Resolver computes fill fractions. The zero value fills continuously.
type Resolver struct {
	Policy Policy
	Step   float64
	Tie    quant.TieBreak
}

// Fraction returns the filled proportion, in [0, 1], of the item at index for
// the given value. Any index is accepted; only [0, maximum) is meaningful.
func (r Resolver) Fraction(value float64, index int) float64 {
	i := float64(index)
	if i <= math.Floor(value-1) {
		return 1
	}
	if i > math.Ceil(value-1) {
		return 0
	}

	frac := value - math.Floor(value)
	if r.Policy == Stepped {
		frac = quant.RoundToStep(frac, r.Step, r.Tie)
	}
	return clamp(frac)
}

// Fractions returns the fill of every item in a row of maximum items.
func (r Resolver) Fractions(value float64, maximum int) []float64 {
	if maximum <= 0 {
		return nil
	}
	fs := make([]float64, maximum)
	r.Fill(fs, value)
	return fs
}

// Fill writes the fraction of item i into fs[i] for every index of fs.
func (r Resolver) Fill(fs []float64, value float64) {
	for i := range fs {
		fs[i] = r.Fraction(value, i)
	}
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
