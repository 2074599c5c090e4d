package packet

// ToNibble converts an 8-bit channel value to its 4-bit wire
// representation. This is the system's one color-precision contract:
// r4 = floor(r8 / 17). It is idempotent whenever c is already a
// multiple of 17 (0, 17, 34, ..., 255).
func ToNibble(c uint8) uint8 {
	return c / 17
}

// RGB24 is an 8-bit-per-channel color, the precision BMP palettes and
// the built-in default palette are both stored at.
type RGB24 struct {
	R, G, B uint8
}

// identificationMessage is embedded in memory-preset packets whose
// repeat counter is 8..15, letting frame-skipping players recognize a
// guaranteed screen clear.
const identificationMessage = "CD+GMAGIC 001B"

// EncodePaletteLoad packs 8 consecutive palette colors into the
// 16-byte payload of a palette-load-low/high packet.
//
// For each color, two bytes pack one 12-bit RGB value as 4 bits per
// channel:
//
//	byte0 = (r4<<2) | ((g4>>2)&0x03)
//	byte1 = ((g4&0x03)<<4) | (b4&0x0F)
func EncodePaletteLoad(colors [8]RGB24) [16]byte {
	var payload [16]byte
	for i, c := range colors {
		r4 := ToNibble(c.R)
		g4 := ToNibble(c.G)
		b4 := ToNibble(c.B)
		payload[i*2] = (r4 << 2) | ((g4 >> 2) & 0x03)
		payload[i*2+1] = ((g4 & 0x03) << 4) | (b4 & 0x0F)
	}
	return payload
}

// DecodePaletteLoad reverses EncodePaletteLoad, recovering the 4-bit
// per-channel colors (scaled back up to 8-bit, each a multiple of 17)
// packed by the wire format.
func DecodePaletteLoad(payload [16]byte) [8]RGB24 {
	var colors [8]RGB24
	for i := 0; i < 8; i++ {
		b0 := payload[i*2] & 0x3F
		b1 := payload[i*2+1] & 0x3F
		r4 := (b0 >> 2) & 0x0F
		g4 := ((b0 & 0x03) << 2) | ((b1 >> 4) & 0x03)
		b4 := b1 & 0x0F
		colors[i] = RGB24{R: r4 * 17, G: g4 * 17, B: b4 * 17}
	}
	return colors
}

// PaletteLoad builds a full palette-load-low or palette-load-high
// packet. low selects the first 8 entries (indices 0..7) versus the
// last 8 (indices 8..15).
func PaletteLoad(colors [8]RGB24, low bool) Packet {
	sub := SubPaletteLoadHigh
	if low {
		sub = SubPaletteLoadLow
	}
	return Packet{
		Command:    CommandGraphics,
		Subcommand: sub,
		Payload:    EncodePaletteLoad(colors),
	}
}

// MemoryPreset builds a memory-preset packet clearing the screen to
// colorIndex. repeat is a 0..15 counter; for repeat >= 8 the
// identification message is embedded starting at payload byte 2 so
// frame-skipping players can recognize the clear.
func MemoryPreset(colorIndex uint8, repeat uint8) Packet {
	var payload [16]byte
	payload[0] = colorIndex & 0x0F
	payload[1] = repeat & 0x0F
	if repeat >= 8 {
		for i, ch := range identificationMessage {
			if 2+i >= 16 {
				break
			}
			payload[2+i] = byte(ch-0x20) & 0x3F
		}
	}
	return Packet{
		Command:    CommandGraphics,
		Subcommand: SubMemoryPreset,
		Payload:    payload,
	}
}

// MemoryPresetSequence builds the sixteen sequential memory-preset
// packets (repeat 0..15) that guarantee a clear across
// frame-skipping players.
func MemoryPresetSequence(colorIndex uint8) [16]Packet {
	var seq [16]Packet
	for repeat := 0; repeat < 16; repeat++ {
		seq[repeat] = MemoryPreset(colorIndex, uint8(repeat))
	}
	return seq
}

// BorderPreset builds a border-preset packet.
func BorderPreset(colorIndex uint8) Packet {
	var payload [16]byte
	payload[0] = colorIndex & 0x0F
	return Packet{
		Command:    CommandGraphics,
		Subcommand: SubBorderPreset,
		Payload:    payload,
	}
}

// TransparentColor builds a transparent-color packet.
func TransparentColor(colorIndex uint8) Packet {
	var payload [16]byte
	payload[0] = colorIndex & 0x0F
	return Packet{
		Command:    CommandGraphics,
		Subcommand: SubTransparentColor,
		Payload:    payload,
	}
}

// TileBlock builds a tile-block packet (copy or XOR variant) for
// block (bx, by) with the given two colors and 12 row bitmasks. Bit
// (5-column) of rows[r] is set iff that pixel uses color1, else
// color0.
func TileBlock(xor bool, color0, color1 uint8, bx, by int, rows [12]uint8) Packet {
	sub := SubTileBlockCopy
	if xor {
		sub = SubTileBlockXOR
	}
	var payload [16]byte
	payload[0] = color0 & 0x0F
	payload[1] = color1 & 0x0F
	payload[2] = uint8(by) & 0x1F
	payload[3] = uint8(bx) & 0x3F
	for i, r := range rows {
		payload[4+i] = r & 0x3F
	}
	return Packet{
		Command:    CommandGraphics,
		Subcommand: sub,
		Payload:    payload,
	}
}

// ScrollDirection is a small bounded (0..2) direction code: 0 = none,
// 1 = one way, 2 = the other.
type ScrollDirection uint8

// ScrollCommand builds a scroll-preset or scroll-copy packet.
func ScrollCommand(copy bool, color uint8, hDir ScrollDirection, hOffset uint8, vDir ScrollDirection, vOffset uint8) Packet {
	sub := SubScrollPreset
	if copy {
		sub = SubScrollCopy
	}
	var payload [16]byte
	payload[0] = color & 0x0F
	payload[1] = (uint8(hDir) << 4) | (hOffset & 0x0F)
	payload[2] = (uint8(vDir) << 4) | (vOffset & 0x0F)
	return Packet{
		Command:    CommandGraphics,
		Subcommand: sub,
		Payload:    payload,
	}
}

// TileBlockFields decodes the color0, color1, block coordinates, and
// row bitmasks from a tile-block packet's payload.
func TileBlockFields(p Packet) (color0, color1 uint8, bx, by int, rows [12]uint8) {
	color0 = p.Payload[0] & 0x0F
	color1 = p.Payload[1] & 0x0F
	by = int(p.Payload[2] & 0x1F)
	bx = int(p.Payload[3] & 0x3F)
	for i := 0; i < 12; i++ {
		rows[i] = p.Payload[4+i] & 0x3F
	}
	return
}
