package project

import (
	"encoding/binary"
	"testing"
)

type fileBuilder struct {
	buf []byte
}

func (b *fileBuilder) str(s string) {
	b.buf = append(b.buf, []byte(s)...)
}

func (b *fileBuilder) cstr(s string) {
	b.buf = append(b.buf, []byte(s)...)
	b.buf = append(b.buf, 0)
}

func (b *fileBuilder) i32(v int32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	b.buf = append(b.buf, tmp[:]...)
}

func (b *fileBuilder) i8(v int8) {
	b.buf = append(b.buf, byte(v))
}

func buildMinimalProject(t *testing.T, withClip bool) []byte {
	t.Helper()
	var b fileBuilder
	b.str(headerMarker)

	b.str(audioMarker)
	b.cstr("song.mp3")
	b.i32(0)

	b.str(trackMarker)
	for i := 0; i < 8; i++ {
		b.i8(0)
	}

	if !withClip {
		b.i32(0)
		return b.buf
	}

	b.i32(1) // clip count

	b.str(scrollMarker)
	b.i8(0)    // track
	b.i32(100) // start
	b.i32(50)  // duration
	b.i32(1)   // event count
	b.i8(3)    // color
	b.i8(0)    // hdir
	b.i8(2)    // hoffset
	b.i8(1)    // vdir
	b.i8(1)    // voffset
	b.i8(1)    // copy flag

	return b.buf
}

func TestParseMinimalProjectWithNoClips(t *testing.T) {
	data := buildMinimalProject(t, false)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.AudioPath != "song.mp3" {
		t.Fatalf("AudioPath = %q", p.AudioPath)
	}
	if len(p.Clips) != 0 {
		t.Fatalf("expected 0 clips, got %d", len(p.Clips))
	}
}

func TestParseProjectWithScrollClip(t *testing.T) {
	data := buildMinimalProject(t, true)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Clips) != 1 {
		t.Fatalf("expected 1 clip, got %d", len(p.Clips))
	}
	clip := p.Clips[0]
	if clip.Variant != ClipScroll {
		t.Fatalf("Variant = %v, want ClipScroll", clip.Variant)
	}
	if clip.StartPacket != 100 || clip.DurationPackets != 50 {
		t.Fatalf("start/duration = %d/%d, want 100/50", clip.StartPacket, clip.DurationPackets)
	}
	if len(clip.ScrollEvents) != 1 {
		t.Fatalf("expected 1 scroll event, got %d", len(clip.ScrollEvents))
	}
	ev := clip.ScrollEvents[0]
	if ev.Color != 3 || !ev.Copy {
		t.Fatalf("scroll event = %+v", ev)
	}
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := Parse([]byte("not a project file"))
	if err == nil {
		t.Fatal("expected an error for a missing header marker")
	}
}

func TestParseRejectsTruncatedAudioSection(t *testing.T) {
	var b fileBuilder
	b.str(headerMarker)
	b.str(audioMarker)
	_, err := Parse(b.buf)
	if err == nil {
		t.Fatal("expected an error for a truncated audio section")
	}
}
