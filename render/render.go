// Package render rasterizes a rating control into an image, applying each
// item's fill fraction as a sub-pixel clip of its glyph.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/nfnt/resize"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"dasa.cc/rating/rating"
)

var regular = mustParseTTF(goregular.TTF)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// Face returns a face of the bundled regular font at size points.
func Face(size float64) font.Face {
	return truetype.NewFace(regular, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// Style decides the colors of a rendered control. A nil Face draws no
// caption.
type Style struct {
	Background color.Color
	Fill       color.Color
	Track      color.Color
	Text       color.Color
	Face       font.Face
}

// DefaultStyle is amber stars over grey tracks on a transparent background.
var DefaultStyle = Style{
	Background: color.Transparent,
	Fill:       colornames.Amber500,
	Track:      colornames.Grey300,
	Text:       colornames.Grey800,
}

// Caption formats the value of c as shown next to the row.
func Caption(c *rating.Control) string {
	return fmt.Sprintf("%g/%d", c.Value(), c.Maximum())
}

// Draw renders c at its natural size, one pixel per unit.
func Draw(c *rating.Control, st Style) *image.RGBA {
	size := int(math.Round(c.ItemSize()))
	pad := int(math.Round(c.ItemPadding()))
	w, h := int(math.Ceil(c.Width())), size

	var caption string
	if st.Face != nil {
		caption = Caption(c)
		w += pad + font.MeasureString(st.Face, caption).Ceil()
		if mh := st.Face.Metrics().Height.Ceil(); mh > h {
			h = mh
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if st.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)
	}

	star := Star(size)
	track, fill := image.NewUniform(st.Track), image.NewUniform(st.Fill)
	top := (h - size) / 2
	for _, it := range c.Items() {
		r := image.Rect(0, 0, size, size).Add(image.Pt(int(math.Round(it.Left)), top))
		if it.Fill < 1 {
			draw.DrawMask(dst, r, track, image.Point{}, star, image.Point{}, draw.Over)
		}
		if it.Fill > 0 {
			draw.DrawMask(dst, r, fill, image.Point{}, Clip(star, it.Fill), image.Point{}, draw.Over)
		}
	}

	if caption != "" {
		m := st.Face.Metrics()
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(st.Text),
			Face: st.Face,
			Dot: fixed.Point26_6{
				X: fixed.I(int(math.Ceil(c.Width())) + pad),
				Y: fixed.I((h-m.Height.Ceil())/2) + m.Ascent,
			},
		}
		d.DrawString(caption)
	}
	return dst
}

// Scale resizes img by factor, keeping its aspect ratio.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 || factor <= 0 {
		return img
	}
	w := uint(math.Round(float64(img.Bounds().Dx()) * factor))
	return resize.Resize(w, 0, img, resize.Lanczos3)
}
