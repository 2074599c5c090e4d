// Package transition maps a progressive-reveal length onto an ordered
// sequence of block coordinates, and loads the external 1536-byte
// transition-file format describing a custom reveal order.
package transition

import (
	"fmt"

	"cdgmagic/internal/vram"
)

// Coord is a zero-based block coordinate.
type Coord struct {
	BX, BY int
}

// Order is an ordered reveal sequence of block coordinates.
type Order []Coord

// DefaultOrder builds the column-major sweep used whenever no
// transition file is supplied or loading fails.
func DefaultOrder() Order {
	order := make(Order, 0, vram.BlocksWide*vram.BlocksTall)
	for bx := 0; bx < vram.BlocksWide; bx++ {
		for by := 0; by < vram.BlocksTall; by++ {
			order = append(order, Coord{BX: bx, BY: by})
		}
	}
	return order
}

// FileByteLength is the exact size of a well-formed transition file:
// 768 one-based (bx, by) pairs.
const FileByteLength = 768 * 2

// LoadFile decodes a transition file's raw bytes into an Order,
// translating its one-based coordinates to zero-based. It returns an
// error if the payload isn't exactly FileByteLength bytes; callers
// should fall back to DefaultOrder() on error.
func LoadFile(data []byte) (Order, error) {
	if len(data) != FileByteLength {
		return nil, fmt.Errorf("transition file: want %d bytes, got %d", FileByteLength, len(data))
	}
	order := make(Order, 0, 768)
	for i := 0; i < FileByteLength; i += 2 {
		bx := int(data[i]) - 1
		by := int(data[i+1]) - 1
		order = append(order, Coord{BX: bx, BY: by})
	}
	return order, nil
}

// RevealedAt returns the set of coordinates visible after step i
// (0-based): the first i+1 blocks of order. Coordinates beyond len(order)
// are clamped.
func RevealedAt(order Order, i int) map[Coord]bool {
	revealed := make(map[Coord]bool)
	n := i + 1
	if n > len(order) {
		n = len(order)
	}
	for j := 0; j < n; j++ {
		revealed[order[j]] = true
	}
	return revealed
}

// Masked returns the coordinates of order not yet revealed at step i
// (0-based) — the blocks a progressive reveal must still mask with
// background at that step.
func Masked(order Order, i int) []Coord {
	n := i + 1
	if n > len(order) {
		return nil
	}
	return append([]Coord(nil), order[n:]...)
}
