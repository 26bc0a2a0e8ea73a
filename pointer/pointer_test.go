package pointer

import (
	"fmt"
	"testing"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

func (ph phase) forMouse() mouse.Direction {
	switch ph {
	case phaseBegin:
		return mouse.DirPress
	case phaseMove:
		return mouse.DirNone
	case phaseEnd:
		return mouse.DirRelease
	default:
		panic(fmt.Errorf("unknown phase(%v)", int(ph)))
	}
}

func (ph phase) forTouch() touch.Type {
	switch ph {
	case phaseBegin:
		return touch.TypeBegin
	case phaseMove:
		return touch.TypeMove
	case phaseEnd:
		return touch.TypeEnd
	default:
		panic(fmt.Errorf("unknown phase(%v)", int(ph)))
	}
}

// genEvent is a generic testing event converted to mouse or touch input.
type genEvent struct {
	x, y float32
	ph   phase
}

func (e genEvent) Touch() touch.Event {
	return touch.Event{X: e.x, Y: e.y, Type: e.ph.forTouch()}
}

func (e genEvent) Mouse() mouse.Event {
	btn := mouse.ButtonLeft
	if e.ph == phaseMove {
		btn = mouse.ButtonNone
	}
	return mouse.Event{X: e.x, Y: e.y, Direction: e.ph.forMouse(), Button: btn}
}

type testQueue []interface{}

func (q *testQueue) new(x, y float32) { *q = append(*q, genEvent{x, y, phaseBegin}) }
func (q *testQueue) mov(x, y float32) { *q = append(*q, genEvent{x, y, phaseMove}) }
func (q *testQueue) end(x, y float32) { *q = append(*q, genEvent{x, y, phaseEnd}) }

func (q testQueue) makeMouse() testQueue {
	var p testQueue
	for _, e := range q {
		if gen, ok := e.(genEvent); ok {
			e = gen.Mouse()
		}
		p = append(p, e)
	}
	return p
}

func (q testQueue) makeTouch() testQueue {
	var p testQueue
	for _, e := range q {
		if gen, ok := e.(genEvent); ok {
			e = gen.Touch()
		}
		p = append(p, e)
	}
	return p
}

func (q testQueue) filter(t *testing.T) []Gesture {
	var gs []Gesture
	f := &EventFilter{Send: func(g Gesture) { gs = append(gs, g) }}
	for _, e := range q {
		if out := f.Filter(e); out != e {
			t.Fatalf("filter changed event %v into %v", e, out)
		}
	}
	for _, g := range gs {
		t.Logf("%#v", g)
	}
	return gs
}

func TestTap(t *testing.T) {
	var q testQueue
	q.new(10, 5)
	q.mov(14, 5)
	q.end(15, 5)
	for name, events := range map[string]testQueue{"mouse": q.makeMouse(), "touch": q.makeTouch()} {
		gs := events.filter(t)
		if len(gs) != 1 {
			t.Fatalf("%s: have %v gestures, want 1", name, len(gs))
		}
		if g := gs[0]; g.Kind != KindTap || !g.Final || g.X != 15 {
			t.Errorf("%s: have %#v", name, g)
		}
	}
}

func TestDrag(t *testing.T) {
	var q testQueue
	q.new(0, 0)
	q.mov(25, 0)
	q.mov(30, 0)
	q.end(40, 0)
	gs := q.makeMouse().filter(t)
	if len(gs) != 3 {
		t.Fatalf("have %v gestures, want 3", len(gs))
	}
	for i, g := range gs {
		if g.Kind != KindDrag {
			t.Errorf("gesture %v: have %v, want Drag", i, g.Kind)
		}
	}
	if last := gs[len(gs)-1]; !last.Final || last.X != 40 {
		t.Errorf("have %#v", last)
	}
}

func TestDraggingState(t *testing.T) {
	f := &EventFilter{}
	f.Filter(genEvent{0, 0, phaseBegin}.Touch())
	f.Filter(genEvent{0, 30, phaseMove}.Touch())
	if !f.Dragging() {
		t.Fatal("expected vertical move past margin to start drag")
	}
	f.Filter(genEvent{0, 30, phaseEnd}.Touch())
	if f.Dragging() {
		t.Fatal("expected release to end drag")
	}
}

func TestIgnored(t *testing.T) {
	var q testQueue
	q.mov(50, 0) // hover
	q.end(50, 0) // stale release
	q = q.makeMouse()
	q = append(q,
		mouse.Event{X: 5, Direction: mouse.DirPress, Button: mouse.ButtonRight},
		mouse.Event{X: 5, Direction: mouse.DirStep, Button: mouse.ButtonWheelUp},
		touch.Event{X: 5, Type: touch.TypeBegin, Sequence: 1},
		"not an event",
	)
	if gs := q.filter(t); len(gs) != 0 {
		t.Errorf("have %v, want no gestures", gs)
	}
}

func TestNilSend(t *testing.T) {
	var f EventFilter
	f.Filter(genEvent{0, 0, phaseBegin}.Mouse())
	f.Filter(genEvent{0, 0, phaseEnd}.Mouse())
}
