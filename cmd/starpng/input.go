package main

import (
	"golang.org/x/mobile/event/mouse"

	"dasa.cc/rating/pointer"
	"dasa.cc/rating/rating"
)

// simulate presses at x0, moves to x1 and releases, as a mouse would.
func simulate(f *pointer.EventFilter, x0, x1 float32) {
	f.Filter(mouse.Event{X: x0, Direction: mouse.DirPress, Button: mouse.ButtonLeft})
	if x1 != x0 {
		f.Filter(mouse.Event{X: x1, Direction: mouse.DirNone})
	}
	f.Filter(mouse.Event{X: x1, Direction: mouse.DirRelease, Button: mouse.ButtonLeft})
}

func fills(c *rating.Control) []float64 {
	var fs []float64
	for _, it := range c.Items() {
		fs = append(fs, it.Fill)
	}
	return fs
}
