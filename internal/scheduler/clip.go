package scheduler

import (
	"cdgmagic/internal/fontblock"
	"cdgmagic/internal/palette"
)

// Kind tags which of the four clip variants a Clip carries.
type Kind int

const (
	KindBMP Kind = iota
	KindText
	KindScroll
	KindPaletteGlobal
)

// Clip is the scheduler's own immutable-once-registered input: by the
// time a project.Clip reaches here, the exporter has already resolved
// its asset (decoded the BMP, rasterized the text) into destination
// blocks, so the scheduler deals only in packets and placement.
type Clip struct {
	Kind     Kind
	Track    int
	Start    int
	Duration int

	// BMP
	Blocks      []fontblock.FontBlock
	BMPPalette  *palette.Palette
	BorderColor uint8
	FillColor   uint8

	// Text
	TextBlocks  []fontblock.FontBlock
	LoadPalette bool
	BGColor     uint8

	// Scroll
	ScrollColor            uint8
	HDirection, VDirection uint8
	HOffset, VOffset       uint8
	ScrollCopy             bool

	// PaletteGlobal
	GlobalPalette *palette.Palette
}
