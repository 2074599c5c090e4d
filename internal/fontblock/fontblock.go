// Package fontblock defines the ephemeral unit both the bitmap
// converter and the text renderer produce: one 6x12 tile of color
// indices addressed to a grid cell and a moment in time, ready for the
// tile encoder to turn into packets.
package fontblock

import "cdgmagic/internal/vram"

// FontBlock is one 6x12 tile of 4-bit color indices scheduled for
// encoding at a specific packet, layer, and channel.
type FontBlock struct {
	BX, BY  int
	Packet  int
	Layer   int
	Channel int
	Pixels  vram.Block
}
