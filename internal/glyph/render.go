package glyph

import (
	"cdgmagic/internal/fontblock"
	"cdgmagic/internal/vram"
)

// Box is a tile-aligned bounding box in block coordinates.
type Box struct {
	Left, Top, Width, Height int // all in tile units
}

// RenderOptions carries the per-clip coloring and placement inputs
// the text tile renderer needs.
type RenderOptions struct {
	Box                    Box
	LineIndex              int
	Foreground, Background uint8
	StartPacket            int
	Layer, Channel         int
}

// RenderLine lays out text as a single horizontally-centered line of
// 6x12 tiles within opts.Box at opts.Box.Top + opts.LineIndex, skipping
// any character whose destination cell falls outside the 50x18 grid.
func RenderLine(text string, opts RenderOptions) []fontblock.FontBlock {
	runes := []rune(text)
	textWidth := len(runes)
	center := opts.Box.Left + floorDiv(opts.Box.Width-textWidth, 2)
	by := opts.Box.Top + opts.LineIndex

	blocks := make([]fontblock.FontBlock, 0, textWidth)
	for i, ch := range runes {
		bx := center + i
		if bx < 0 || bx >= vram.BlocksWide || by < 0 || by >= vram.BlocksTall {
			continue
		}

		g := Lookup(ch)
		var pixels vram.Block
		for r := 0; r < vram.TileHeight; r++ {
			for c := 0; c < vram.TileWidth; c++ {
				if g[r]&(1<<(5-c)) != 0 {
					pixels[r][c] = opts.Foreground
				} else {
					pixels[r][c] = opts.Background
				}
			}
		}

		blocks = append(blocks, fontblock.FontBlock{
			BX:      bx,
			BY:      by,
			Packet:  opts.StartPacket,
			Layer:   opts.Layer,
			Channel: opts.Channel,
			Pixels:  pixels,
		})
	}
	return blocks
}

// floorDiv divides a by b, rounding toward negative infinity rather
// than toward zero (Go's native integer division truncates toward
// zero, which would shift centering by one tile when a is negative
// and odd).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
