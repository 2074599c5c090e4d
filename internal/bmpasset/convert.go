package bmpasset

import (
	"cdgmagic/internal/fontblock"
	"cdgmagic/internal/transition"
	"cdgmagic/internal/vram"
)

// ConvertOptions parameterizes the bitmap-to-block conversion: where
// on the timeline it begins, which reveal order (if any) staggers
// block emission, and which z-layer/channel the produced FontBlocks
// are tagged with.
type ConvertOptions struct {
	StartPacket int
	Order       transition.Order // nil means no transition: all blocks at StartPacket
	Layer       int
	Channel     int
}

// ToBlocks samples im into the 50x18 on-screen grid, scaling source
// coordinates by sx = Width/300, sy = Height/216, and schedules each
// block at StartPacket plus its transition step (0 if no transition is
// given).
func (im *Image) ToBlocks(opts ConvertOptions) []fontblock.FontBlock {
	sx := float64(im.Width) / float64(vram.Width)
	sy := float64(im.Height) / float64(vram.Height)

	step := make(map[transition.Coord]int)
	if opts.Order != nil {
		for i, c := range opts.Order {
			step[c] = i
		}
	}

	blocks := make([]fontblock.FontBlock, 0, vram.BlocksWide*vram.BlocksTall)
	for bx := 0; bx < vram.BlocksWide; bx++ {
		for by := 0; by < vram.BlocksTall; by++ {
			var pixels vram.Block
			for dy := 0; dy < vram.TileHeight; dy++ {
				for dx := 0; dx < vram.TileWidth; dx++ {
					srcX := int(float64(bx*vram.TileWidth+dx) * sx)
					srcY := int(float64(by*vram.TileHeight+dy) * sy)
					if srcX >= im.Width {
						srcX = im.Width - 1
					}
					if srcY >= im.Height {
						srcY = im.Height - 1
					}
					pixels[dy][dx] = im.at(srcX, srcY) & 0x0F
				}
			}

			offset := 0
			if opts.Order != nil {
				offset = step[transition.Coord{BX: bx, BY: by}]
			}

			blocks = append(blocks, fontblock.FontBlock{
				BX:      bx,
				BY:      by,
				Packet:  opts.StartPacket + offset,
				Layer:   opts.Layer,
				Channel: opts.Channel,
				Pixels:  pixels,
			})
		}
	}
	return blocks
}
