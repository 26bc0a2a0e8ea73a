// Package pointer condenses mouse and touch streams into the taps and drags
// that drive a rating control.
package pointer

import (
	"fmt"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

/*
promotion; a press starts a touch, and the touch either ends in place or
strays past touchMargin and becomes a drag.

press
	- release       -> Tap(final)
	- move > margin -> Drag
		- move      -> Drag
		- release   -> Drag(final)
*/

type Kind uint8

const (
	KindTap Kind = iota + 1
	KindDrag
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "Tap"
	case KindDrag:
		return "Drag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gesture is the condensed result of one or more input events. X and Y are
// in the coordinate space of the events that produced it.
type Gesture struct {
	Kind  Kind
	X, Y  float32
	Final bool
}

func (g Gesture) GoString() string {
	return fmt.Sprintf("%T{Kind:%v X:%2v Y:%2v Final:%v}", g, g.Kind, g.X, g.Y, g.Final)
}

type phase uint8

const (
	phaseNone phase = iota
	phaseBegin
	phaseMove
	phaseEnd
)

func phaseFor(t interface{}) phase {
	switch t {
	case touch.TypeBegin, mouse.DirPress:
		return phaseBegin
	case touch.TypeEnd, mouse.DirRelease:
		return phaseEnd
	case touch.TypeMove, mouse.DirNone:
		return phaseMove
	default:
		return phaseNone
	}
}

// touchMargin is how far, in pixels, a press may wander before it counts as a
// drag.
const touchMargin = 20

// EventFilter turns mouse.Event and touch.Event values into Gesture values
// delivered to Send. Only the left mouse button, or no button for moves,
// participates.
type EventFilter struct {
	Send func(Gesture)

	tracking bool
	dragging bool
	origin   Gesture
}

// Filter inspects e and may call Send; e is always returned unchanged so the
// filter can sit in front of other event consumers.
func (f *EventFilter) Filter(e interface{}) interface{} {
	var (
		x, y float32
		ph   phase
	)
	switch e := e.(type) {
	case mouse.Event:
		if e.Button != mouse.ButtonLeft && e.Button != mouse.ButtonNone {
			return e
		}
		x, y, ph = e.X, e.Y, phaseFor(e.Direction)
	case touch.Event:
		if e.Sequence != 0 {
			return e // only the first finger rates
		}
		x, y, ph = e.X, e.Y, phaseFor(e.Type)
	default:
		return e
	}

	switch ph {
	case phaseBegin:
		f.tracking, f.dragging = true, false
		f.origin = Gesture{Kind: KindTap, X: x, Y: y}
	case phaseMove:
		if !f.tracking {
			return e // hover
		}
		if !f.dragging && abs(f.origin.X-x) <= touchMargin && abs(f.origin.Y-y) <= touchMargin {
			return e
		}
		f.dragging = true
		f.send(Gesture{Kind: KindDrag, X: x, Y: y})
	case phaseEnd:
		if !f.tracking {
			return e // stale release
		}
		kind := KindTap
		if f.dragging {
			kind = KindDrag
		}
		f.tracking, f.dragging = false, false
		f.send(Gesture{Kind: kind, X: x, Y: y, Final: true})
	}
	return e
}

// Dragging reports whether a drag is in progress.
func (f *EventFilter) Dragging() bool { return f.dragging }

func (f *EventFilter) send(g Gesture) {
	if f.Send != nil {
		f.Send(g)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
