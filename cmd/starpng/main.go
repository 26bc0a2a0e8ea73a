// Command starpng renders a star rating control to a PNG file.
//
// The control is configured by flags. Setting -tap or -drag simulates a
// pointer at that x position, measured in control units from the left edge,
// before rendering. For example:
//
//	starpng -max=5 -value=3.25 -out=stars.png
//	starpng -mode=drag -step=0.5 -drag=40 -caption -scale=2
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"dasa.cc/rating/fill"
	"dasa.cc/rating/pointer"
	"dasa.cc/rating/quant"
	"dasa.cc/rating/rating"
	"dasa.cc/rating/render"
)

var (
	flagOut     = flag.String("out", "stars.png", "file to write.")
	flagMax     = flag.Int("max", 5, "number of stars.")
	flagValue   = flag.Float64("value", 0, "initial value.")
	flagStep    = flag.Float64("step", 1, "step frequency; greater than 1 disables snapping.")
	flagSize    = flag.Float64("size", 24, "star size in pixels.")
	flagPadding = flag.Float64("padding", 4, "gap between stars in pixels.")
	flagTap     = flag.Float64("tap", math.NaN(), "simulate a tap at x.")
	flagDrag    = flag.Float64("drag", math.NaN(), "simulate a drag from the left edge to x.")
	flagCaption = flag.Bool("caption", false, "draw the value next to the stars.")
	flagScale   = flag.Float64("scale", 1, "output density relative to size.")

	mode   rating.Mode
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
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	c, err := rating.New(*flagMax,
		rating.Value(*flagValue),
		rating.Step(*flagStep),
		rating.Tie(tie),
		rating.Fill(policy),
		rating.Input(mode),
		rating.ItemSize(*flagSize),
		rating.ItemPadding(*flagPadding),
	)
	if err != nil {
		return fmt.Errorf("configure control: %w", err)
	}

	f := &pointer.EventFilter{Send: func(g pointer.Gesture) { c.Handle(g, c.Width()) }}
	switch {
	case !math.IsNaN(*flagTap):
		simulate(f, float32(*flagTap), float32(*flagTap))
	case !math.IsNaN(*flagDrag):
		simulate(f, 0, float32(*flagDrag))
	}

	st := render.DefaultStyle
	if *flagCaption {
		st.Face = render.Face(*flagSize / 2)
	}
	img := render.Scale(render.Draw(c, st), *flagScale)

	out, err := os.Create(*flagOut)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode %s: %w", *flagOut, err)
	}
	log.Printf("wrote %s; value %v fills %v", *flagOut, c.Value(), fills(c))
	return out.Close()
}
