// Package rating implements the value model of a star rating control.
//
// A Control owns a real Value within [0, Maximum] and a row of Maximum items,
// each carrying the fraction of its glyph that appears filled. Every write to
// the value or its configuration recomputes the whole row before returning,
// so a host may read Items at any time and render them as clips or masks.
//
// A Control is not safe for concurrent use; hosts deliver input events to it
// one at a time.
package rating

import (
	"errors"

	"dasa.cc/rating/fill"
	"dasa.cc/rating/pointer"
	"dasa.cc/rating/quant"
)

var (
	ErrMaximum  = errors.New("rating: maximum must be positive")
	ErrItemSize = errors.New("rating: item size must be positive")
	ErrPadding  = errors.New("rating: item padding must not be negative")
)

// Item is the render parameters of one glyph in the row. Left and Right are
// the glyph's horizontal extent within the control's natural width.
type Item struct {
	Index       int
	Fill        float64
	Left, Right float64
}

// Control is the state of a single rating widget.
type Control struct {
	value    float64
	max      int
	step     float64
	tie      quant.TieBreak
	policy   fill.Policy
	mode     Mode
	size     float64
	padding  float64
	readOnly bool

	items   []Item
	changed bool
	hook    func(float64)
}

// Option configures a Control during New.
type Option func(*Control) error

// Value sets the initial value; it is clamped like any other write.
func Value(x float64) Option {
	return func(c *Control) error { c.value = x; return nil }
}

// Step sets the step frequency used for drag input and stepped fills.
func Step(x float64) Option {
	return func(c *Control) error { c.step = x; return nil }
}

// Tie sets how values halfway between steps are resolved.
func Tie(t quant.TieBreak) Option {
	return func(c *Control) error { c.tie = t; return nil }
}

// Fill sets the policy used to fill the boundary item.
func Fill(p fill.Policy) Option {
	return func(c *Control) error { c.policy = p; return nil }
}

// Input sets how pointer positions map to values.
func Input(m Mode) Option {
	return func(c *Control) error { c.mode = m; return nil }
}

// ItemSize sets the width of a single glyph.
func ItemSize(x float64) Option {
	return func(c *Control) error {
		if x <= 0 {
			return ErrItemSize
		}
		c.size = x
		return nil
	}
}

// ItemPadding sets the gap between adjacent glyphs.
func ItemPadding(x float64) Option {
	return func(c *Control) error {
		if x < 0 {
			return ErrPadding
		}
		c.padding = x
		return nil
	}
}

// ReadOnly sets whether pointer input is ignored.
func ReadOnly(b bool) Option {
	return func(c *Control) error { c.readOnly = b; return nil }
}

// OnChange sets a func called with the new value after every change.
func OnChange(fn func(float64)) Option {
	return func(c *Control) error { c.hook = fn; return nil }
}

// New returns a Control of maximum items. Defaults are a value of zero,
// whole steps rounding halves up, continuous fill, tap input, and 12 unit
// items padded by 2.
func New(maximum int, opts ...Option) (*Control, error) {
	if maximum <= 0 {
		return nil, ErrMaximum
	}
	c := &Control{max: maximum, step: 1, size: 12, padding: 2}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.value = clamp(c.value, float64(c.max))
	c.layout()
	return c, nil
}

func (c *Control) Value() float64           { return c.value }
func (c *Control) Maximum() int             { return c.max }
func (c *Control) Step() float64            { return c.step }
func (c *Control) Tie() quant.TieBreak      { return c.tie }
func (c *Control) FillPolicy() fill.Policy  { return c.policy }
func (c *Control) InputMode() Mode          { return c.mode }
func (c *Control) ItemSize() float64        { return c.size }
func (c *Control) ItemPadding() float64     { return c.padding }
func (c *Control) ReadOnly() bool           { return c.readOnly }
func (c *Control) SetReadOnly(b bool)       { c.readOnly = b }
func (c *Control) SetInput(m Mode)          { c.mode = m }
func (c *Control) SetHook(fn func(float64)) { c.hook = fn }

// Resolver returns the fill resolver matching the control's configuration.
func (c *Control) Resolver() fill.Resolver {
	return fill.Resolver{Policy: c.policy, Step: c.step, Tie: c.tie}
}

// Quantizer returns the pointer quantizer matching the control's configuration.
func (c *Control) Quantizer() Quantizer {
	return Quantizer{Mode: c.mode, Step: c.step, Tie: c.tie}
}

// Width returns the natural width of the row.
func (c *Control) Width() float64 {
	return float64(c.max)*c.size + float64(c.max-1)*c.padding
}

// Geometry returns the quantizer geometry of the control drawn at width.
func (c *Control) Geometry(width float64) Geometry {
	return Geometry{Width: width, Size: c.size, Padding: c.padding, Maximum: c.max}
}

// SetValue clamps x to [0, Maximum] and stores it.
func (c *Control) SetValue(x float64) {
	x = clamp(x, float64(c.max))
	if x == c.value {
		return
	}
	c.value = x
	c.refill()
	c.changed = true
	if c.hook != nil {
		c.hook(x)
	}
}

// SetMaximum replaces the row with n new items, clamping the value to fit.
func (c *Control) SetMaximum(n int) error {
	if n <= 0 {
		return ErrMaximum
	}
	c.max = n
	c.layout()
	c.SetValue(c.value)
	return nil
}

func (c *Control) SetStep(x float64) {
	c.step = x
	c.refill()
}

func (c *Control) SetTie(t quant.TieBreak) {
	c.tie = t
	c.refill()
}

func (c *Control) SetFill(p fill.Policy) {
	c.policy = p
	c.refill()
}

func (c *Control) SetItemSize(x float64) error {
	if x <= 0 {
		return ErrItemSize
	}
	c.size = x
	c.layout()
	return nil
}

func (c *Control) SetItemPadding(x float64) error {
	if x < 0 {
		return ErrPadding
	}
	c.padding = x
	c.layout()
	return nil
}

// Fill returns the fill fraction of item i, or 0 if i is out of range.
func (c *Control) Fill(i int) float64 {
	if i < 0 || i >= len(c.items) {
		return 0
	}
	return c.items[i].Fill
}

// Items returns a copy of the row.
func (c *Control) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Point sets the value from a pointer at x on the control drawn at width.
// It reports whether the pointer was accepted.
func (c *Control) Point(x, width float64) bool {
	if c.readOnly {
		return false
	}
	c.SetValue(c.Quantizer().Quantize(x, c.Geometry(width)))
	return true
}

// Handle applies a gesture with coordinates local to the control drawn at
// width.
func (c *Control) Handle(g pointer.Gesture, width float64) bool {
	switch g.Kind {
	case pointer.KindTap, pointer.KindDrag:
		return c.Point(float64(g.X), width)
	}
	return false
}

// Changed reports whether the value has changed since the last call to
// Changed.
func (c *Control) Changed() bool {
	changed := c.changed
	c.changed = false
	return changed
}

// layout recreates items for the current maximum and item geometry.
func (c *Control) layout() {
	c.items = make([]Item, c.max)
	pitch := c.size + c.padding
	for i := range c.items {
		left := float64(i) * pitch
		c.items[i] = Item{Index: i, Left: left, Right: left + c.size}
	}
	c.refill()
}

func (c *Control) refill() {
	r := c.Resolver()
	for i := range c.items {
		c.items[i].Fill = r.Fraction(c.value, i)
	}
}
