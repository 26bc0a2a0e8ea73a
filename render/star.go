package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// innerRatio is the ratio of inner to outer radius of a regular five
// pointed star.
var innerRatio = math.Sin(math.Pi/10) / math.Sin(3*math.Pi/10)

// Star returns a size by size coverage mask of a five pointed star with its
// top point centered on the upper edge.
func Star(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 {
		return mask
	}

	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src

	r := float64(size) / 2
	for i := 0; i < 10; i++ {
		rad := r
		if i%2 == 1 {
			rad = r * innerRatio
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := float32(r+rad*math.Cos(a)), float32(r+rad*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Clip returns a copy of mask keeping only the leftmost fraction f of its
// width. The column the clip edge falls in keeps its coverage scaled by how
// much of that column lies inside the clip.
func Clip(mask *image.Alpha, f float64) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	if f <= 0 {
		return out
	}
	if f >= 1 {
		copy(out.Pix, mask.Pix)
		return out
	}

	edge := f * float64(b.Dx())
	full := int(edge)
	part := edge - float64(full)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Min.X+full; x++ {
			out.SetAlpha(x, y, mask.AlphaAt(x, y))
		}
		if x := b.Min.X + full; x < b.Max.X && part > 0 {
			a := mask.AlphaAt(x, y)
			a.A = uint8(float64(a.A) * part)
			out.SetAlpha(x, y, a)
		}
	}
	return out
}
