package project

import (
	"encoding/binary"
	"fmt"
)

// cursor is a forward-only reader over a project file's bytes. The
// format is big-endian throughout, since it mirrors an external
// tool's on-disk layout rather than a format this project designs
// itself.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, fmt.Errorf("project: truncated at offset %d, need %d bytes, have %d", c.pos, n, c.remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) int32() (int32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (c *cursor) int8() (int8, error) {
	b, err := c.bytes(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// literal consumes and validates an exact marker string, e.g.
// "CDGMagic_ProjectFile::", returning an error naming the offset on
// mismatch.
func (c *cursor) literal(marker string) error {
	b, err := c.bytes(len(marker))
	if err != nil {
		return fmt.Errorf("project: expected marker %q: %w", marker, err)
	}
	if string(b) != marker {
		return fmt.Errorf("project: at offset %d expected marker %q, got %q", c.pos-len(marker), marker, string(b))
	}
	return nil
}

// cstring reads a null-terminated string.
func (c *cursor) cstring() (string, error) {
	start := c.pos
	for c.pos < len(c.data) {
		if c.data[c.pos] == 0 {
			s := string(c.data[start:c.pos])
			c.pos++
			return s, nil
		}
		c.pos++
	}
	return "", fmt.Errorf("project: unterminated string starting at offset %d", start)
}

// peekLiteral reports whether marker appears at the current position
// without consuming it, used to disambiguate clip-type tags.
func (c *cursor) peekLiteral(marker string) bool {
	n := len(marker)
	if c.remaining() < n {
		return false
	}
	return string(c.data[c.pos:c.pos+n]) == marker
}
