// Starview opens a window with a star rating control that can be tapped or
// dragged. Arrow keys change the value by one step, escape quits.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/driver/gldriver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"dasa.cc/rating/fill"
	"dasa.cc/rating/pointer"
	"dasa.cc/rating/quant"
	"dasa.cc/rating/rating"
	"dasa.cc/rating/render"
)

const (
	title  = "starview"
	margin = 16
)

var (
	flagMax  = flag.Int("max", 5, "number of stars.")
	flagSize = flag.Float64("size", 48, "star size in pixels.")
	flagStep = flag.Float64("step", 0.5, "step frequency.")

	mode   = rating.Drag
	tie    quant.TieBreak
	policy fill.Policy
)

func init() {
	flag.Var(&mode, "mode", "input mode; tap or drag.")
	flag.Var(&tie, "tie", "tie-break for halfway steps; up or even.")
	flag.Var(&policy, "fill", "fill policy; continuous or stepped.")
}

func main() {
	flag.Parse()
	c, err := rating.New(*flagMax,
		rating.Step(*flagStep),
		rating.Tie(tie),
		rating.Fill(policy),
		rating.Input(mode),
		rating.ItemSize(*flagSize),
		rating.ItemPadding(*flagSize/6),
		rating.OnChange(func(v float64) { log.Printf("value %v", v) }),
	)
	if err != nil {
		log.Fatal(err)
	}
	gldriver.Main(func(s screen.Screen) {
		if err := run(s, c); err != nil {
			log.Fatal(err)
		}
	})
}

func run(s screen.Screen, c *rating.Control) error {
	st := render.DefaultStyle
	st.Background = color.White
	st.Face = render.Face(*flagSize / 3)
	sz := render.Draw(c, st).Bounds().Size()

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  title,
		Width:  sz.X + 2*margin,
		Height: sz.Y + 2*margin,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	f := &pointer.EventFilter{Send: func(g pointer.Gesture) {
		g.X -= margin
		if c.Handle(g, c.Width()) && c.Changed() {
			w.Send(paint.Event{})
		}
	}}

	var bounds image.Rectangle
	for {
		switch e := f.Filter(w.NextEvent()).(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case key.Event:
			if e.Direction == key.DirRelease {
				break
			}
			switch e.Code {
			case key.CodeEscape:
				return nil
			case key.CodeRightArrow:
				c.SetValue(c.Value() + stride(c))
			case key.CodeLeftArrow:
				c.SetValue(c.Value() - stride(c))
			}
			if c.Changed() {
				w.Send(paint.Event{})
			}
		case size.Event:
			bounds = e.Bounds()
		case paint.Event:
			if err := publish(s, w, c, st, bounds); err != nil {
				return err
			}
		case mouse.Event, touch.Event:
			// handled by the filter
		case error:
			return e
		}
	}
}

// stride is how far the arrow keys move the value.
func stride(c *rating.Control) float64 {
	if s := c.Step(); s > 0 && s <= 1 {
		return s
	}
	return 0.1
}

func publish(s screen.Screen, w screen.Window, c *rating.Control, st render.Style, bounds image.Rectangle) error {
	img := render.Draw(c, st)
	b, err := s.NewBuffer(img.Bounds().Size())
	if err != nil {
		return err
	}
	defer b.Release()
	draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)

	w.Fill(bounds, color.White, draw.Src)
	w.Upload(image.Pt(margin, margin), b, b.Bounds())
	w.Publish()
	return nil
}
