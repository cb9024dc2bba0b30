package icon

import (
	"bytes"
	"image/color"
	"testing"
)

var exportSizes = []int{16, 32, 48, 64, 128, 256}

func TestDrawCanvasSize(t *testing.T) {
	for _, s := range exportSizes {
		img := Draw(s)
		b := img.Bounds()
		if b.Dx() != s || b.Dy() != s {
			t.Errorf("Draw(%d) bounds = %dx%d, want %dx%d", s, b.Dx(), b.Dy(), s, s)
		}
	}
}

func TestCornersTransparent(t *testing.T) {
	for _, s := range exportSizes {
		img := Draw(s)
		corners := [][2]int{{0, 0}, {s - 1, 0}, {0, s - 1}, {s - 1, s - 1}}
		for _, c := range corners {
			if a := img.RGBAAt(c[0], c[1]).A; a != 0 {
				t.Errorf("size %d: corner (%d,%d) alpha = %d, want 0", s, c[0], c[1], a)
			}
		}
	}
}

func TestCapsuleFilledWithAccent(t *testing.T) {
	// The capsule's center should land inside the body rectangle at
	// every size, including the degenerate small ones.
	for _, s := range exportSizes {
		img := Draw(s)
		pad := int(float64(s) * DefaultPadding)
		micH := int(float64(s-2*pad) * 0.45)
		cx, cy := s/2, pad+micH/2
		if got := img.RGBAAt(cx, cy); got != Accent {
			t.Errorf("size %d: pixel (%d,%d) = %v, want accent %v", s, cx, cy, got, Accent)
		}
	}
}

func TestStandStrokedWithTint(t *testing.T) {
	img := Draw(256)
	// Bottom end of the stem, which the base line also covers.
	if got := img.RGBAAt(128, 167); got != Tint {
		t.Errorf("pixel (128,167) = %v, want tint %v", got, Tint)
	}
}

// capsuleWidth measures the accent-colored run on the row through the
// capsule's vertical center.
func capsuleWidth(t *testing.T, s int) int {
	t.Helper()
	img := Draw(s)
	pad := int(float64(s) * DefaultPadding)
	micH := int(float64(s-2*pad) * 0.45)
	y := pad + micH/2
	n := 0
	for x := 0; x < s; x++ {
		if img.RGBAAt(x, y) == Accent {
			n++
		}
	}
	if n == 0 {
		t.Fatalf("size %d: no accent pixels on capsule mid row %d", s, y)
	}
	return n
}

func TestCapsuleScalesProportionally(t *testing.T) {
	ref := capsuleWidth(t, 256)
	for _, s := range exportSizes[:len(exportSizes)-1] {
		got := float64(capsuleWidth(t, s))
		want := float64(ref) * float64(s) / 256
		if diff := got - want; diff > 1.5 || diff < -1.5 {
			t.Errorf("size %d: capsule width %v, want %v scaled from 256 (±1 rounding)", s, got, want)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	a := Draw(64)
	b := Draw(64)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders at the same size differ")
	}
}

func TestDrawPaddedInvalidGeometry(t *testing.T) {
	cases := []struct {
		size    int
		padding float64
	}{
		{64, 0.5},
		{64, 0.75},
		{64, 0},
		{64, -0.1},
		{0, 0.15},
		{-3, 0.15},
	}
	for _, c := range cases {
		if _, err := DrawPadded(c.size, c.padding); err == nil {
			t.Errorf("DrawPadded(%d, %v) = nil error, want invalid geometry", c.size, c.padding)
		}
	}
}

func TestDrawPaddedTinySizes(t *testing.T) {
	// Sizes 1 and 2 are visually meaningless but must not crash.
	for _, s := range []int{1, 2} {
		img, err := DrawPadded(s, DefaultPadding)
		if err != nil {
			t.Fatalf("DrawPadded(%d) error: %v", s, err)
		}
		if b := img.Bounds(); b.Dx() != s || b.Dy() != s {
			t.Errorf("DrawPadded(%d) bounds = %v", s, b)
		}
	}
}

func TestFallbackSolid(t *testing.T) {
	img := Fallback(32)
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("Fallback(32) bounds = %v", b)
	}
	for _, p := range [][2]int{{0, 0}, {31, 31}, {16, 16}} {
		if got := img.RGBAAt(p[0], p[1]); got != FallbackAccent {
			t.Errorf("Fallback pixel (%d,%d) = %v, want %v", p[0], p[1], got, FallbackAccent)
		}
	}
}

func TestOnlyGlyphColorsUsed(t *testing.T) {
	img := Draw(128)
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			c := img.RGBAAt(x, y)
			if c != Accent && c != Tint && c != (color.RGBA{}) {
				t.Fatalf("pixel (%d,%d) = %v, want accent, tint or transparent", x, y, c)
			}
		}
	}
}
