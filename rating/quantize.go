package rating

import (
	"fmt"
	"math"

	"dasa.cc/rating/quant"
)

// Mode selects how a pointer position maps onto a value.
type Mode uint8

const (
	// Tap maps a pointer to the whole number of the item under it.
	Tap Mode = iota
	// Drag maps a pointer to a fractional value snapped to the step.
	Drag
)

var modeNames = [...]string{Tap: "tap", Drag: "drag"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	for i, name := range modeNames {
		if name == s {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown input mode %q", s)
}

// Geometry is the horizontal layout of a control as seen by the quantizer.
type Geometry struct {
	Width   float64 // control width in the pointer's coordinate space
	Size    float64 // item size
	Padding float64 // gap between items
	Maximum int     // item count
}

// Quantizer maps pointer positions onto values.
type Quantizer struct {
	Mode Mode
	Step float64
	Tie  quant.TieBreak
}

// Quantize returns the value in [0, g.Maximum] for a pointer at x. Any x is
// accepted; positions off either end clamp.
func (q Quantizer) Quantize(x float64, g Geometry) float64 {
	if g.Width <= 0 || g.Maximum <= 0 {
		return 0
	}
	max := float64(g.Maximum)
	idx := math.Floor(x / g.Width * max)

	var v float64
	switch q.Mode {
	case Drag:
		off := (x - (g.Size+g.Padding)*idx) / g.Size
		v = idx + math.Min(quant.RoundToStep(off, q.Step, q.Tie), 1)
	default:
		v = idx + 1
	}
	return clamp(v, max)
}

func clamp(v, max float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	} else if v > max {
		return max
	}
	return v
}
