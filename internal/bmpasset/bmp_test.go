package bmpasset

import (
	"encoding/binary"
	"testing"
)

// buildBMP constructs a minimal 8bpp indexed BMP with a 16-color
// palette and the given pixel rows (row 0 = top of image), stored in
// the file bottom-up.
func buildBMP(t *testing.T, width, height int, rows [][]uint8) []byte {
	t.Helper()
	rowSize := ((width + 3) / 4) * 4
	paletteBytes := 16 * 4
	dibSize := 40
	pixelOffset := 14 + dibSize + paletteBytes
	total := pixelOffset + rowSize*height

	data := make([]byte, total)
	data[0], data[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(data[2:6], uint32(total))
	binary.LittleEndian.PutUint32(data[10:14], uint32(pixelOffset))
	binary.LittleEndian.PutUint32(data[14:18], uint32(dibSize))
	binary.LittleEndian.PutUint32(data[18:22], uint32(width))
	binary.LittleEndian.PutUint32(data[22:26], uint32(height)) // positive: bottom-up
	binary.LittleEndian.PutUint16(data[26:28], 1)
	binary.LittleEndian.PutUint16(data[28:30], 8)
	binary.LittleEndian.PutUint32(data[46:50], 16)

	for i := 0; i < 16; i++ {
		off := 14 + dibSize + i*4
		data[off] = uint8(i * 2)   // B
		data[off+1] = uint8(i * 3) // G
		data[off+2] = uint8(i * 5) // R
	}

	for row := 0; row < height; row++ {
		srcRow := height - 1 - row // row 0 of `rows` is the top, stored bottom-up
		base := pixelOffset + row*rowSize
		copy(data[base:base+width], rows[srcRow])
	}

	return data
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := make([]byte, 60)
	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected an error for missing BM magic")
	}
}

func TestDecodeRejectsNon8BPP(t *testing.T) {
	data := buildBMP(t, 2, 2, [][]uint8{{0, 0}, {0, 0}})
	binary.LittleEndian.PutUint16(data[28:30], 24)
	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected an error for non-8bpp bitmap")
	}
}

func TestDecodeRoundTripsDimensionsAndPixels(t *testing.T) {
	rows := [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
	}
	data := buildBMP(t, 3, 2, rows)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", img.Width, img.Height)
	}
	if img.at(0, 0) != 1 || img.at(2, 0) != 3 {
		t.Fatalf("top row mismatch: %v", img.Pixels[0:3])
	}
	if img.at(0, 1) != 4 || img.at(2, 1) != 6 {
		t.Fatalf("bottom row mismatch: %v", img.Pixels[3:6])
	}
}

func TestDecodePaletteConvertsBGRToRGB(t *testing.T) {
	data := buildBMP(t, 2, 2, [][]uint8{{0, 0}, {0, 0}})
	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Entry 1: B=2, G=3, R=5 per buildBMP's construction.
	if img.Palette[1] != (RGB{R: 5, G: 3, B: 2}) {
		t.Fatalf("palette[1] = %+v, want R:5 G:3 B:2", img.Palette[1])
	}
}

func TestDecodeRejectsTruncatedFile(t *testing.T) {
	data := buildBMP(t, 4, 4, [][]uint8{
		{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	})
	_, err := Decode(data[:len(data)-2])
	if err == nil {
		t.Fatal("expected an error for a truncated pixel row")
	}
}
