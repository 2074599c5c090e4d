// Package palette implements the CD+G 16-entry color table, its
// documented default contents, and the optional lease-based allocator
// for time-bounded color assignment. Modeled on a PPU-style palette
// manager (64-color master palette + 32-byte palette RAM) generalized
// to 16 directly-addressable RGB entries.
package palette

import "cdgmagic/internal/packet"

// Size is the fixed number of palette entries.
const Size = 16

// Palette holds 16 RGB colors at 8-bit-per-channel precision.
type Palette [Size]packet.RGB24

// Default returns the documented default palette: black, yellow,
// gray, white, a blue ramp, a red ramp, and a green ramp, filling the
// remaining entries with mid-tones.
func Default() Palette {
	return Palette{
		{R: 0, G: 0, B: 0},       // 0: black
		{R: 255, G: 255, B: 0},   // 1: yellow
		{R: 136, G: 136, B: 136}, // 2: gray
		{R: 255, G: 255, B: 255}, // 3: white
		{R: 0, G: 0, B: 136},     // 4: dark blue
		{R: 0, G: 0, B: 255},     // 5: blue
		{R: 0, G: 136, B: 255},   // 6: light blue
		{R: 136, G: 0, B: 0},     // 7: dark red
		{R: 255, G: 0, B: 0},     // 8: red
		{R: 255, G: 136, B: 136}, // 9: light red
		{R: 0, G: 136, B: 0},     // 10: dark green
		{R: 0, G: 255, B: 0},     // 11: green
		{R: 136, G: 255, B: 136}, // 12: light green
		{R: 68, G: 68, B: 68},    // 13: dark gray
		{R: 204, G: 204, B: 204}, // 14: light gray
		{R: 255, G: 204, B: 0},   // 15: gold
	}
}

// LowHalf and HighHalf split the palette into the two 8-entry groups
// a palette-load-low/high packet pair carries.
func (p Palette) LowHalf() [8]packet.RGB24 {
	var out [8]packet.RGB24
	copy(out[:], p[0:8])
	return out
}

func (p Palette) HighHalf() [8]packet.RGB24 {
	var out [8]packet.RGB24
	copy(out[:], p[8:16])
	return out
}

// LoadPackets builds the palette-load-low and palette-load-high
// packets representing this palette's current contents.
func (p Palette) LoadPackets() (low, high packet.Packet) {
	return packet.PaletteLoad(p.LowHalf(), true), packet.PaletteLoad(p.HighHalf(), false)
}

// ReplaceFrom overwrites the palette wholesale, as a BMP clip's
// embedded 16-color table does.
func (p *Palette) ReplaceFrom(colors [Size]packet.RGB24) {
	*p = Palette(colors)
}
