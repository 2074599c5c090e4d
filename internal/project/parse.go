package project

import "fmt"

const (
	headerMarker   = "CDGMagic_ProjectFile::\x00"
	audioMarker    = "CDGMagic_AudioPlayback::\x00"
	trackMarker    = "CDGMagic_TrackOptions::\x00"
	bmpClipMarker  = "CDGMagic_BMPClip::"
	textClipMarker = "CDGMagic_TextClip::"
	scrollMarker   = "CDGMagic_ScrollClip::"
	paletteMarker  = "CDGMagic_PALGlobalClip::"
)

// Parse decodes a full project file per the fixed big-endian layout:
// header, audio section, track section, clip count, then that many
// clip records.
func Parse(data []byte) (*Project, error) {
	c := newCursor(data)

	if err := c.literal(headerMarker); err != nil {
		return nil, err
	}

	p := &Project{}

	if err := c.literal(audioMarker); err != nil {
		return nil, err
	}
	audioPath, err := c.cstring()
	if err != nil {
		return nil, fmt.Errorf("project: audio path: %w", err)
	}
	p.AudioPath = audioPath
	playPos, err := c.int32()
	if err != nil {
		return nil, fmt.Errorf("project: audio play position: %w", err)
	}
	p.AudioPlayPosition = playPos

	if err := c.literal(trackMarker); err != nil {
		return nil, err
	}
	for i := 0; i < 8; i++ {
		ch, err := c.int8()
		if err != nil {
			return nil, fmt.Errorf("project: track channel %d: %w", i, err)
		}
		p.TrackChannels[i] = ch
	}

	count, err := c.int32()
	if err != nil {
		return nil, fmt.Errorf("project: clip count: %w", err)
	}
	// Historically the count includes a trailing empty-marker slot;
	// a genuine final record always begins with a recognized marker,
	// so stop as soon as none matches rather than trusting count
	// literally.
	for i := int32(0); i < count; i++ {
		if !c.hasAnyClipMarker() {
			break
		}
		clip, err := parseClip(c)
		if err != nil {
			return nil, fmt.Errorf("project: clip %d: %w", i, err)
		}
		p.Clips = append(p.Clips, clip)
	}

	return p, nil
}

func (c *cursor) hasAnyClipMarker() bool {
	return c.peekLiteral(bmpClipMarker) || c.peekLiteral(textClipMarker) ||
		c.peekLiteral(scrollMarker) || c.peekLiteral(paletteMarker)
}

func parseClip(c *cursor) (Clip, error) {
	switch {
	case c.peekLiteral(bmpClipMarker):
		return parseBMPClip(c)
	case c.peekLiteral(textClipMarker):
		return parseTextClip(c)
	case c.peekLiteral(scrollMarker):
		return parseScrollClip(c)
	case c.peekLiteral(paletteMarker):
		return parsePaletteClip(c)
	default:
		return Clip{}, fmt.Errorf("project: unrecognized clip marker at offset %d", c.pos)
	}
}

func parseClipHeader(c *cursor, marker string) (track int8, start, duration, eventCount int32, err error) {
	if err = c.literal(marker); err != nil {
		return
	}
	if track, err = c.int8(); err != nil {
		return
	}
	if start, err = c.int32(); err != nil {
		return
	}
	if duration, err = c.int32(); err != nil {
		return
	}
	eventCount, err = c.int32()
	return
}

func parseBMPClip(c *cursor) (Clip, error) {
	track, start, duration, eventCount, err := parseClipHeader(c, bmpClipMarker)
	if err != nil {
		return Clip{}, err
	}

	clip := Clip{Variant: ClipBMP, Track: track, StartPacket: start, DurationPackets: duration}
	for i := int32(0); i < eventCount; i++ {
		ev, err := parseBMPEvent(c)
		if err != nil {
			return Clip{}, fmt.Errorf("bmp event %d: %w", i, err)
		}
		clip.BMPEvents = append(clip.BMPEvents, ev)
	}
	return clip, nil
}

func parseBMPEvent(c *cursor) (BMPEvent, error) {
	var ev BMPEvent
	var err error

	if ev.SourcePath, err = c.cstring(); err != nil {
		return ev, err
	}
	if ev.DestX, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.DestY, err = c.int32(); err != nil {
		return ev, err
	}
	// Height precedes width on the wire.
	if ev.Height, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.Width, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.FillColor, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.BorderColor, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.CompositeColor, err = c.int8(); err != nil {
		return ev, err
	}
	compositeFlag, err := c.int8()
	if err != nil {
		return ev, err
	}
	ev.Composite = compositeFlag != 0
	loadPaletteFlag, err := c.int8()
	if err != nil {
		return ev, err
	}
	ev.LoadPalette = loadPaletteFlag != 0
	if ev.TransitionPath, err = c.cstring(); err != nil {
		return ev, err
	}
	if ev.TransitionLength, err = c.int32(); err != nil {
		return ev, err
	}
	return ev, nil
}

func parseTextClip(c *cursor) (Clip, error) {
	if err := c.literal(textClipMarker); err != nil {
		return Clip{}, err
	}
	track, err := c.int8()
	if err != nil {
		return Clip{}, err
	}
	start, err := c.int32()
	if err != nil {
		return Clip{}, err
	}
	duration, err := c.int32()
	if err != nil {
		return Clip{}, err
	}

	data := &TextClipData{}
	if data.Text, err = c.cstring(); err != nil {
		return Clip{}, err
	}
	if data.FontName, err = c.cstring(); err != nil {
		return Clip{}, err
	}
	if data.FontSize, err = c.int32(); err != nil {
		return Clip{}, err
	}
	if data.Foreground, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.Background, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.Outline, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.Frame, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.KaraokeMode, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.HighlightMode, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.AntialiasMode, err = c.int8(); err != nil {
		return Clip{}, err
	}
	if data.DefaultPalette, err = c.int8(); err != nil {
		return Clip{}, err
	}

	eventCount, err := c.int32()
	if err != nil {
		return Clip{}, err
	}
	for i := int32(0); i < eventCount; i++ {
		ev, err := parseTextEvent(c)
		if err != nil {
			return Clip{}, fmt.Errorf("text event %d: %w", i, err)
		}
		data.Events = append(data.Events, ev)
	}

	return Clip{Variant: ClipText, Track: track, StartPacket: start, DurationPackets: duration, TextClip: data}, nil
}

func parseTextEvent(c *cursor) (TextEvent, error) {
	var ev TextEvent
	var err error
	if ev.BoxLeft, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.BoxTop, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.BoxWidth, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.BoxHeight, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.LineIndex, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.WordIndex, err = c.int32(); err != nil {
		return ev, err
	}
	if ev.KaraokeType, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.TransitionPath, err = c.cstring(); err != nil {
		return ev, err
	}
	return ev, nil
}

func parseScrollClip(c *cursor) (Clip, error) {
	track, start, duration, eventCount, err := parseClipHeader(c, scrollMarker)
	if err != nil {
		return Clip{}, err
	}
	clip := Clip{Variant: ClipScroll, Track: track, StartPacket: start, DurationPackets: duration}
	for i := int32(0); i < eventCount; i++ {
		ev, err := parseScrollEvent(c)
		if err != nil {
			return Clip{}, fmt.Errorf("scroll event %d: %w", i, err)
		}
		clip.ScrollEvents = append(clip.ScrollEvents, ev)
	}
	return clip, nil
}

func parseScrollEvent(c *cursor) (ScrollEvent, error) {
	var ev ScrollEvent
	var err error
	if ev.Color, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.HDirection, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.HOffset, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.VDirection, err = c.int8(); err != nil {
		return ev, err
	}
	if ev.VOffset, err = c.int8(); err != nil {
		return ev, err
	}
	copyFlag, err := c.int8()
	if err != nil {
		return ev, err
	}
	ev.Copy = copyFlag != 0
	return ev, nil
}

func parsePaletteClip(c *cursor) (Clip, error) {
	track, start, duration, eventCount, err := parseClipHeader(c, paletteMarker)
	if err != nil {
		return Clip{}, err
	}
	clip := Clip{Variant: ClipPaletteGlobal, Track: track, StartPacket: start, DurationPackets: duration}
	for i := int32(0); i < eventCount; i++ {
		var pe PaletteEvent
		for j := 0; j < 16; j++ {
			r, err := c.int8()
			if err != nil {
				return Clip{}, fmt.Errorf("palette event %d color %d: %w", i, j, err)
			}
			g, err := c.int8()
			if err != nil {
				return Clip{}, fmt.Errorf("palette event %d color %d: %w", i, j, err)
			}
			b, err := c.int8()
			if err != nil {
				return Clip{}, fmt.Errorf("palette event %d color %d: %w", i, j, err)
			}
			pe.Colors[j] = RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
		}
		clip.PaletteEvents = append(clip.PaletteEvents, pe)
	}
	return clip, nil
}
