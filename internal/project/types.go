package project

// ClipVariant tags which of the four clip kinds a Clip holds.
type ClipVariant int

const (
	ClipBMP ClipVariant = iota
	ClipText
	ClipScroll
	ClipPaletteGlobal
)

func (v ClipVariant) String() string {
	switch v {
	case ClipBMP:
		return "BMP"
	case ClipText:
		return "Text"
	case ClipScroll:
		return "Scroll"
	case ClipPaletteGlobal:
		return "PaletteGlobal"
	default:
		return "Unknown"
	}
}

// Clip is the tagged record every timeline entry parses into. Only
// the field group matching Variant is populated; the rest are the
// type's zero value.
type Clip struct {
	Variant         ClipVariant
	Track           int8
	StartPacket     int32
	DurationPackets int32

	BMPEvents     []BMPEvent
	TextClip      *TextClipData
	ScrollEvents  []ScrollEvent
	PaletteEvents []PaletteEvent
}

// BMPEvent is one bitmap placement within a BMP clip: scaled source
// asset, destination geometry, and the flags controlling composite
// and transition behavior.
type BMPEvent struct {
	SourcePath       string
	DestX, DestY     int32
	Height, Width    int32 // height precedes width on the wire
	FillColor        int8
	BorderColor      int8
	CompositeColor   int8
	Composite        bool
	LoadPalette      bool
	TransitionPath   string
	TransitionLength int32
}

// TextClipData is the per-clip content of a Text clip: the rendered
// string, font selection, and the four color roles plus karaoke
// metadata, shared across all of the clip's TextEvents.
type TextClipData struct {
	Text           string
	FontName       string
	FontSize       int32
	Foreground     int8
	Background     int8
	Outline        int8
	Frame          int8
	KaraokeMode    int8
	HighlightMode  int8
	AntialiasMode  int8
	DefaultPalette int8
	Events         []TextEvent
}

// TextEvent is one bounding box/line placement within a Text clip.
type TextEvent struct {
	BoxLeft, BoxTop, BoxWidth, BoxHeight int32
	LineIndex                            int32
	WordIndex                            int32
	KaraokeType                          int8
	TransitionPath                       string
}

// ScrollEvent is one scroll-preset/scroll-copy pair's parameters.
type ScrollEvent struct {
	Color      int8
	HDirection int8
	HOffset    int8
	VDirection int8
	VOffset    int8
	Copy       bool
}

// PaletteEvent is a global 16-color palette replacement.
type PaletteEvent struct {
	Colors [16]RGB
}

// RGB is an 8-bit-per-channel color as stored in a project file's
// palette event.
type RGB struct {
	R, G, B uint8
}

// Project is a fully parsed project file: audio reference, per-track
// channel assignments, and the ordered clip timeline.
type Project struct {
	AudioPath         string
	AudioPlayPosition int32
	TrackChannels     [8]int8
	Clips             []Clip
}
