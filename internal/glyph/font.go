// Package glyph rasterizes characters into the 6x12 tiles the CD+G
// display addresses: a built-in bitmap font for the common case, and
// an arbitrary-TTF/OTF path (font.go's companion rasterize.go) for
// clips that name an external font.
package glyph

// Glyph is a 6x12 boolean mask: true where the foreground color
// applies, false for background.
type Glyph [12]uint8 // each row, bit (5-col) set = foreground

// builtin holds the fixed 6x12 bitmap font, keyed by ASCII code point.
// Only the printable range is populated; anything else falls back to
// blank().
var builtin = map[rune]Glyph{}

func init() {
	registerBuiltinFont()
}

// Lookup returns the glyph for ch, or a blank tile if the built-in
// font has no entry for it.
func Lookup(ch rune) Glyph {
	if g, ok := builtin[ch]; ok {
		return g
	}
	return blank()
}

func blank() Glyph {
	return Glyph{}
}

// rowsFromStrings builds a Glyph from twelve 6-character rows of
// '#'/' ', most significant column first, matching the tile-block
// payload's bit-(5-col) convention.
func rowsFromStrings(rows [12]string) Glyph {
	var g Glyph
	for r, s := range rows {
		var mask uint8
		for c := 0; c < 6 && c < len(s); c++ {
			if s[c] == '#' {
				mask |= 1 << (5 - c)
			}
		}
		g[r] = mask
	}
	return g
}
