package render

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/colornames"

	"dasa.cc/rating/rating"
)

func TestStar(t *testing.T) {
	m := Star(24)
	if a := m.AlphaAt(12, 12).A; a != 0xff {
		t.Errorf("center alpha %v, want 0xff", a)
	}
	for _, pt := range []image.Point{{0, 0}, {23, 0}, {0, 23}, {23, 23}} {
		if a := m.AlphaAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("corner %v alpha %v, want 0", pt, a)
		}
	}
	if m := Star(0); !m.Bounds().Empty() {
		t.Errorf("have bounds %v", m.Bounds())
	}
}

func opaque(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return m
}

func TestClip(t *testing.T) {
	m := opaque(10, 2)
	c := Clip(m, 0.25)
	want := []uint8{0xff, 0xff, 0x7f, 0, 0, 0, 0, 0, 0, 0}
	for y := 0; y < 2; y++ {
		for x, a := range want {
			if have := c.AlphaAt(x, y).A; have != a {
				t.Errorf("(%v, %v) alpha %v, want %v", x, y, have, a)
			}
		}
	}

	if c := Clip(m, 1); c.AlphaAt(9, 1).A != 0xff {
		t.Error("full clip should keep mask")
	}
	if c := Clip(m, 0); c.AlphaAt(0, 0).A != 0 {
		t.Error("empty clip should clear mask")
	}
	if m.AlphaAt(9, 0).A != 0xff {
		t.Error("Clip modified its input")
	}
}

func TestDraw(t *testing.T) {
	c, err := rating.New(5, rating.Value(3.5), rating.ItemSize(24), rating.ItemPadding(4))
	if err != nil {
		t.Fatal(err)
	}
	img := Draw(c, DefaultStyle)
	if have, want := img.Bounds().Size(), image.Pt(136, 24); have != want {
		t.Fatalf("have size %v, want %v", have, want)
	}

	fill := color.RGBAModel.Convert(colornames.Amber500)
	track := color.RGBAModel.Convert(colornames.Grey300)
	tests := []struct {
		x    int
		want color.Color
	}{
		{12, fill},
		{2*28 + 12, fill},
		{3*28 + 10, fill},
		{3*28 + 14, track},
		{4*28 + 12, track},
	}
	for _, tt := range tests {
		if have := img.At(tt.x, 12); have != tt.want {
			t.Errorf("pixel (%v, 12) = %v, want %v", tt.x, have, tt.want)
		}
	}
	if _, _, _, a := img.At(26, 12).RGBA(); a != 0 {
		t.Error("padding should stay transparent")
	}
}

func TestDrawCaption(t *testing.T) {
	c, err := rating.New(5, rating.Value(2))
	if err != nil {
		t.Fatal(err)
	}
	st := DefaultStyle
	st.Face = Face(12)
	img := Draw(c, st)
	if img.Bounds().Dx() <= int(c.Width()) {
		t.Errorf("caption did not widen image; have %v", img.Bounds())
	}
	if s := Caption(c); s != "2/5" {
		t.Errorf("have caption %q", s)
	}
}

func TestScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	if Scale(img, 1) != image.Image(img) {
		t.Error("unit scale should return input")
	}
	if b := Scale(img, 2).Bounds(); b.Dx() != 80 || b.Dy() != 20 {
		t.Errorf("have bounds %v", b)
	}
}
