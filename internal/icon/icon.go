// Package icon renders the application's microphone glyph: a filled
// capsule body wrapped by a U-shaped arc, with a stem and base line
// below, on a fully transparent background.
package icon

import (
	"fmt"
	"image"
	"image/color"
)

// Accent fills the microphone body; Tint strokes the arc, stem and base.
var (
	Accent = color.RGBA{168, 85, 247, 255}
	Tint   = color.RGBA{196, 140, 255, 255}
)

// FallbackAccent is the solid color used for Fallback tiles, matching
// the tray's stand-in icon when no rendered image is available.
var FallbackAccent = color.RGBA{124, 58, 237, 255}

// DefaultPadding is the fraction of the canvas left empty on each side.
const DefaultPadding = 0.15

// Draw renders the microphone glyph at size×size pixels using
// DefaultPadding. size must be at least 1.
func Draw(size int) *image.RGBA {
	img, err := DrawPadded(size, DefaultPadding)
	if err != nil {
		panic(err) // unreachable for size >= 1
	}
	return img
}

// DrawPadded renders the glyph with an explicit padding ratio.
// padding must satisfy 0 < padding < 0.5 so that a positive drawable
// region remains; size must be at least 1. Violations return an error
// before anything is drawn. Rendering is deterministic: the same inputs
// always produce the same pixels.
func DrawPadded(size int, padding float64) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("icon: size must be positive, got %d", size)
	}
	if padding <= 0 || padding >= 0.5 {
		return nil, fmt.Errorf("icon: padding ratio %v leaves no drawable region (need 0 < ratio < 0.5)", padding)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	pad := int(float64(size) * padding)
	w := size - 2*pad
	h := size - 2*pad
	cx := size / 2

	// Stroke width scales with size but never collapses to zero.
	lw := int(float64(size) * 0.06)
	if lw < 1 {
		lw = 1
	}

	// Microphone body: capsule of width micW and height micH, top edge
	// at pad, horizontally centered on cx.
	micW := int(float64(w) * 0.30)
	micH := int(float64(h) * 0.45)
	micLeft := cx - micW/2
	micTop := pad
	micRight := cx + micW/2
	micBottom := micTop + micH
	radius := micW / 2

	fillEllipse(img, micLeft, micTop, micRight, micTop+micW, Accent)
	fillRect(img, micLeft, micTop+radius, micRight, micBottom, Accent)
	fillEllipse(img, micLeft, micBottom-radius, micRight, micBottom+radius, Accent)

	// U-shaped arc around the body: the lower half of an ellipse whose
	// box starts partway down the capsule and reaches below its bottom.
	arcMargin := int(float64(w) * 0.05)
	arcLeft := micLeft - int(float64(w)*0.12) - arcMargin
	arcRight := micRight + int(float64(w)*0.12) + arcMargin
	arcTop := micTop + int(float64(micH)*0.25)
	arcBottomY := micBottom + int(float64(h)*0.12)
	arcH := arcBottomY - arcTop

	strokeLowerArc(img, arcLeft, arcTop, arcRight, arcTop+arcH*2, lw, Tint)

	// Stem down from the arc, then the base line.
	stemTop := arcTop + arcH
	stemBottom := stemTop + int(float64(h)*0.15)
	fillRect(img, cx-lw/2, stemTop, cx-lw/2+lw-1, stemBottom, Tint)

	baseW := int(float64(w) * 0.25)
	baseY := stemBottom - lw/2
	fillRect(img, cx-baseW/2, baseY, cx+baseW/2, baseY+lw-1, Tint)

	return img, nil
}

// Fallback returns a solid FallbackAccent square, the stand-in tile the
// tray uses when no rendered icon exists.
func Fallback(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, 0, 0, size-1, size-1, FallbackAccent)
	return img
}

// fillRect fills the inclusive box [x0,y0]-[x1,y1], clamped to the canvas.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillEllipse fills the ellipse inscribed in the inclusive box
// [x0,y0]-[x1,y1]. Pixels are tested at their centers.
func fillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// strokeLowerArc strokes the lower half of the ellipse inscribed in the
// inclusive box [x0,y0]-[x1,y1] with a stroke of width lw extending
// inward from the ellipse boundary.
func strokeLowerArc(img *image.RGBA, x0, y0, x1, y1, lw int, c color.RGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	irx := rx - float64(lw)
	iry := ry - float64(lw)
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		py := float64(y) + 0.5
		if py < cy {
			continue // lower half only
		}
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			px := float64(x) + 0.5
			dx := (px - cx) / rx
			dy := (py - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			if irx > 0 && iry > 0 {
				idx := (px - cx) / irx
				idy := (py - cy) / iry
				if idx*idx+idy*idy < 1 {
					continue // inside the stroke's inner edge
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
}
