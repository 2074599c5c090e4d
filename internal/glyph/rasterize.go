package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// oversample sizes the offscreen canvas relative to the 6x12 target
// (the canvas is oversample times the target, doubled for margin). The
// face itself is drawn at the point size it was loaded with; it is not
// scaled by oversample.
const oversample = 3

const alphaThreshold = 128

// Font wraps a parsed TTF/OTF face used for clips that name an
// external font instead of the built-in bitmap set.
type Font struct {
	face font.Face
}

// LoadFont parses TTF/OTF bytes at the given point size.
func LoadFont(data []byte, size float64) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: build face: %w", err)
	}
	return &Font{face: face}, nil
}

// Rasterize renders ch onto an offscreen canvas sized by oversample,
// extracts the tight bounding box by alpha threshold, and downsamples
// into a 6x12 Glyph bitmask.
func (f *Font) Rasterize(ch rune) Glyph {
	canvasW := 6 * oversample * 2
	canvasH := 12 * oversample * 2
	dst := image.NewAlpha(image.Rect(0, 0, canvasW, canvasH))

	dot := fixed.P(canvasW/4, canvasH*3/4)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  dot,
	}
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d.DrawString(string(ch))

	bbox := tightBoundingBox(dst)
	return downsample(dst, bbox)
}

func tightBoundingBox(img *image.Alpha) image.Rectangle {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.AlphaAt(x, y).A > alphaThreshold {
				found = true
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if !found {
		return image.Rect(0, 0, 1, 1)
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// downsample maps bbox onto the fixed 6x12 target grid, setting a
// cell foreground iff the alpha of the single source pixel at the
// top-left of its region clears the threshold.
func downsample(img *image.Alpha, bbox image.Rectangle) Glyph {
	var g Glyph
	w := bbox.Dx()
	h := bbox.Dy()
	if w == 0 || h == 0 {
		return g
	}

	for row := 0; row < 12; row++ {
		var mask uint8
		for col := 0; col < 6; col++ {
			sx := bbox.Min.X + col*w/6
			sy := bbox.Min.Y + row*h/12
			if img.AlphaAt(sx, sy).A > alphaThreshold {
				mask |= 1 << (5 - col)
			}
		}
		g[row] = mask
	}
	return g
}
