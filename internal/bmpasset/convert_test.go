package bmpasset

import (
	"testing"

	"cdgmagic/internal/transition"
	"cdgmagic/internal/vram"
)

func solidImage(w, h int, index uint8) *Image {
	pixels := make([]uint8, w*h)
	for i := range pixels {
		pixels[i] = index
	}
	return &Image{Width: w, Height: h, Pixels: pixels}
}

func TestToBlocksProducesFullGrid(t *testing.T) {
	img := solidImage(vram.Width, vram.Height, 9)
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 100})
	if len(blocks) != vram.BlocksWide*vram.BlocksTall {
		t.Fatalf("got %d blocks, want %d", len(blocks), vram.BlocksWide*vram.BlocksTall)
	}
}

func TestToBlocksSolidImageYieldsUniformPixels(t *testing.T) {
	img := solidImage(vram.Width, vram.Height, 9)
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 0})
	for _, b := range blocks {
		for r := range b.Pixels {
			for c := range b.Pixels[r] {
				if b.Pixels[r][c] != 9 {
					t.Fatalf("block (%d,%d) pixel (%d,%d) = %d, want 9", b.BX, b.BY, r, c, b.Pixels[r][c])
				}
			}
		}
	}
}

func TestToBlocksWithoutTransitionAllSchedulesAtStart(t *testing.T) {
	img := solidImage(vram.Width, vram.Height, 1)
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 42})
	for _, b := range blocks {
		if b.Packet != 42 {
			t.Fatalf("block (%d,%d) scheduled at %d, want 42", b.BX, b.BY, b.Packet)
		}
	}
}

func TestToBlocksWithTransitionStaggersSchedule(t *testing.T) {
	img := solidImage(vram.Width, vram.Height, 1)
	order := transition.DefaultOrder()
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 0, Order: order})

	byCoord := make(map[transition.Coord]int)
	for _, b := range blocks {
		byCoord[transition.Coord{BX: b.BX, BY: b.BY}] = b.Packet
	}
	if byCoord[order[0]] != 0 {
		t.Fatalf("first revealed coord scheduled at %d, want 0", byCoord[order[0]])
	}
	if byCoord[order[5]] != 5 {
		t.Fatalf("6th revealed coord scheduled at %d, want 5", byCoord[order[5]])
	}
}

func TestToBlocksMasksIndicesToLowNibble(t *testing.T) {
	img := solidImage(vram.Width, vram.Height, 0xFF)
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 0})
	if blocks[0].Pixels[0][0] != 0x0F {
		t.Fatalf("pixel = 0x%X, want masked to 0x0F", blocks[0].Pixels[0][0])
	}
}

func TestToBlocksScalesSmallerSourceUpToFullGrid(t *testing.T) {
	// A source smaller than the display still samples across the whole grid.
	img := solidImage(150, 108, 2)
	blocks := img.ToBlocks(ConvertOptions{StartPacket: 0})
	last := blocks[len(blocks)-1]
	if last.BX != vram.BlocksWide-1 || last.BY != vram.BlocksTall-1 {
		t.Fatalf("last block = (%d,%d), want (%d,%d)", last.BX, last.BY, vram.BlocksWide-1, vram.BlocksTall-1)
	}
}
