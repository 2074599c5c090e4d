package packet

import "testing"

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	rows := [12]uint8{0x3F, 0x00, 0x21, 0x3F, 0x00, 0x01, 0x3F, 0x3F, 0x00, 0x10, 0x20, 0x3F}
	p := TileBlock(false, 1, 3, 10, 5, rows)

	wire := p.Marshal()
	if len(wire) != Size {
		t.Fatalf("Marshal produced %d bytes, want %d", len(wire), Size)
	}

	got := Unmarshal(wire[:])
	if got.Command != p.Command || got.Subcommand != p.Subcommand {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
	if got.Payload != p.Payload {
		t.Fatalf("payload mismatch: got %v, want %v", got.Payload, p.Payload)
	}
}

func TestPayloadHighBitsReservedZero(t *testing.T) {
	p := Packet{Command: CommandGraphics, Subcommand: SubTileBlockCopy}
	for i := range p.Payload {
		p.Payload[i] = 0xFF
	}
	wire := p.Marshal()
	for i := 4; i < 20; i++ {
		if wire[i]&0xC0 != 0 {
			t.Fatalf("payload byte %d has high bits set: 0x%02X", i, wire[i])
		}
	}
}

func TestEmpty(t *testing.T) {
	if !NoOp().Empty() {
		t.Fatal("NoOp() must be empty")
	}
	p := BorderPreset(1)
	if p.Empty() {
		t.Fatal("a border-preset packet must not be empty")
	}
}

func TestPaletteLoadRoundTrip(t *testing.T) {
	colors := [8]RGB24{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 0},
		{R: 136, G: 17, B: 221},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 119, G: 119, B: 119},
		{R: 255, G: 255, B: 255},
	}
	payload := EncodePaletteLoad(colors)
	got := DecodePaletteLoad(payload)
	if got != colors {
		t.Fatalf("palette round trip mismatch: got %+v, want %+v", got, colors)
	}
}

// TestPaletteIdentityExample pins a worked case: BMP palette entry 11
// = RGB(255, 0, 0), loaded via palette-load-high (pal_inc 3 = 11-8).
func TestPaletteIdentityExample(t *testing.T) {
	var colors [8]RGB24
	colors[3] = RGB24{R: 255, G: 0, B: 0}
	payload := EncodePaletteLoad(colors)

	if payload[3*2] != 0x3C {
		t.Errorf("byte0 = 0x%02X, want 0x3C", payload[3*2])
	}
	if payload[3*2+1] != 0x00 {
		t.Errorf("byte1 = 0x%02X, want 0x00", payload[3*2+1])
	}
}

func TestToNibbleIdempotentOnMultiplesOf17(t *testing.T) {
	for _, c := range []uint8{0, 17, 34, 51, 68, 85, 102, 119, 136, 153, 170, 187, 204, 221, 238, 255} {
		n := ToNibble(c)
		if n*17 != c {
			t.Errorf("ToNibble(%d)=%d, want exact round trip to %d", c, n, c)
		}
	}
}

func TestMemoryPresetIdentificationMessage(t *testing.T) {
	low := MemoryPreset(2, 3)
	for i := 2; i < 16; i++ {
		if low.Payload[i] != 0 {
			t.Errorf("repeat<8 must leave payload[%d]=0, got 0x%02X", i, low.Payload[i])
		}
	}

	high := MemoryPreset(2, 8)
	if high.Payload[2] != byte('C'-0x20)&0x3F {
		t.Errorf("repeat>=8 must embed identification message at byte 2, got 0x%02X", high.Payload[2])
	}
}

func TestMemoryPresetSequenceHasSixteenPackets(t *testing.T) {
	seq := MemoryPresetSequence(0)
	for i, p := range seq {
		if p.Payload[1] != uint8(i) {
			t.Errorf("sequence[%d] repeat byte = %d, want %d", i, p.Payload[1], i)
		}
	}
}

func TestTileBlockFieldsRoundTrip(t *testing.T) {
	rows := [12]uint8{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x3F, 0x00, 0x15, 0x2A, 0x3F, 0x00}
	p := TileBlock(true, 4, 9, 37, 12, rows)

	c0, c1, bx, by, gotRows := TileBlockFields(p)
	if c0 != 4 || c1 != 9 || bx != 37 || by != 12 || gotRows != rows {
		t.Fatalf("fields mismatch: c0=%d c1=%d bx=%d by=%d rows=%v", c0, c1, bx, by, gotRows)
	}
	if p.Subcommand != SubTileBlockXOR {
		t.Fatalf("expected XOR subcommand, got %v", p.Subcommand)
	}
}
