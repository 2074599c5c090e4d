package exporter

import (
	"encoding/binary"
	"testing"

	"cdgmagic/internal/config"
	"cdgmagic/internal/packet"
)

func buildScrollOnlyProject(t *testing.T) []byte {
	t.Helper()
	var buf []byte
	appendStr := func(s string) { buf = append(buf, []byte(s)...) }
	appendCStr := func(s string) { buf = append(buf, []byte(s)...); buf = append(buf, 0) }
	appendI32 := func(v int32) {
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(v))
		buf = append(buf, tmp[:]...)
	}
	appendI8 := func(v int8) { buf = append(buf, byte(v)) }

	appendStr("CDGMagic_ProjectFile::\x00")
	appendStr("CDGMagic_AudioPlayback::\x00")
	appendCStr("song.mp3")
	appendI32(0)
	appendStr("CDGMagic_TrackOptions::\x00")
	for i := 0; i < 8; i++ {
		appendI8(0)
	}

	appendI32(1) // clip count
	appendStr("CDGMagic_ScrollClip::")
	appendI8(0)    // track
	appendI32(300) // start
	appendI32(100) // duration
	appendI32(1)   // event count
	appendI8(2)    // color
	appendI8(0)    // hdir
	appendI8(1)    // hoffset
	appendI8(0)    // vdir
	appendI8(0)    // voffset
	appendI8(1)    // copy flag

	return buf
}

func TestExportProducesByteMultipleOfPacketSize(t *testing.T) {
	e := New(config.Default(), nil)
	result, err := e.Export(buildScrollOnlyProject(t))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(result.Bytes)%packet.Size != 0 {
		t.Fatalf("output length %d is not a multiple of %d", len(result.Bytes), packet.Size)
	}
}

func TestExportTotalDurationCoversHighestClipEnd(t *testing.T) {
	e := New(config.Default(), nil)
	result, err := e.Export(buildScrollOnlyProject(t))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	wantPackets := 400 // clip ends at start(300)+duration(100)
	if len(result.Bytes) != wantPackets*packet.Size {
		t.Fatalf("output length = %d bytes, want %d", len(result.Bytes), wantPackets*packet.Size)
	}
}

func TestExportEmitsScrollPacketsNearRequestedStart(t *testing.T) {
	e := New(config.Default(), nil)
	result, err := e.Export(buildScrollOnlyProject(t))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	found := false
	for i := 290; i <= 310; i++ {
		off := i * packet.Size
		p := packet.Unmarshal(result.Bytes[off : off+packet.Size])
		if p.Subcommand == packet.SubScrollPreset {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a scroll-preset packet near the clip's requested start")
	}
}

func TestExportRejectsMalformedProject(t *testing.T) {
	e := New(config.Default(), nil)
	_, err := e.Export([]byte("not a project file"))
	if err == nil {
		t.Fatal("expected an error for a malformed project file")
	}
}
