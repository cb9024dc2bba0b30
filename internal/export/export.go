// Package export renders the microphone icon at every target size and
// writes the tray PNG, the primary PNG and a multi-resolution ICO.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/wisprlocal/icongen/internal/icon"
)

// Sizes lists every resolution embedded in the ICO, ascending.
var Sizes = []int{16, 32, 48, 64, 128, 256}

// DefaultDir is the historical output location for the icon set.
var DefaultDir = filepath.Join("src-tauri", "icons")

// Export renders the icon at every size in Sizes and writes three
// artifacts into dir, creating it first if needed:
//
//	32x32.png  tray icon, transparent background
//	icon.png   primary 256×256 icon
//	icon.ico   all sizes in Sizes, downsampled from the 256 render
//
// It returns the paths written so far, in order; on error the returned
// slice covers only the artifacts that were fully written. Re-running
// against the same directory overwrites and produces identical pixels.
func Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	renders := make(map[int]*image.RGBA, len(Sizes))
	for _, s := range Sizes {
		renders[s] = icon.Draw(s)
	}

	var written []string
	for _, art := range []struct {
		name string
		img  *image.RGBA
	}{
		{"32x32.png", renders[32]},
		{"icon.png", renders[256]},
	} {
		p := filepath.Join(dir, art.name)
		if err := writePNG(p, art.img); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	p := filepath.Join(dir, "icon.ico")
	if err := writeICO(p, renders[256]); err != nil {
		return written, err
	}
	written = append(written, p)

	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// writeICO encodes one entry per target size, each scaled down from the
// base render so every embedded bitmap stays consistent with it.
func writeICO(path string, base *image.RGBA) error {
	entries := make([]image.Image, len(Sizes))
	for i, s := range Sizes {
		entries[i] = scale(base, s)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := ico.EncodeAll(f, entries); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func scale(src *image.RGBA, size int) image.Image {
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}
