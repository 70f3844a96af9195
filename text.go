package cursor

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Latin1 is the default text encoding: every byte value maps to exactly one
// rune and back, so arbitrary binary content survives a decode/encode cycle
var Latin1 encoding.Encoding = charmap.ISO8859_1

// ReadString decodes the next n bytes as Latin-1 text and advances past them
func (c *Cursor) ReadString(n int) (string, error) {
	return c.ReadStringEncoding(n, Latin1)
}

// ReadStringEncoding decodes the next n bytes as text in the passed encoding
// and advances past them. The bound check follows Seek: an end position past
// the buffer fails with a RangeError and leaves the position unchanged.
func (c *Cursor) ReadStringEncoding(n int, enc encoding.Encoding) (string, error) {
	end := c.pos + n
	if n < 0 || end > len(c.buffer) {
		return "", &RangeError{Position: end, Length: len(c.buffer)}
	}

	decoded, err := enc.NewDecoder().Bytes(c.buffer[c.pos:end])
	if err != nil {
		return "", err
	}

	c.pos = end
	return string(decoded), nil
}

// WriteString encodes val as Latin-1 and writes it at the current position,
// truncating at the end of the buffer, and returns the number of bytes
// actually written
func (c *Cursor) WriteString(val string) (int, error) {
	return c.WriteStringEncoding(val, -1, Latin1)
}

// WriteStringN is WriteString limited to at most max encoded bytes
func (c *Cursor) WriteStringN(val string, max int) (int, error) {
	return c.WriteStringEncoding(val, max, Latin1)
}

// WriteStringEncoding encodes val with enc and writes at most max bytes of it
// at the current position (all of the encoded text when max is negative),
// truncating at the end of the buffer. It advances by and returns the number
// of bytes actually written.
func (c *Cursor) WriteStringEncoding(val string, max int, enc encoding.Encoding) (int, error) {
	encoded, err := enc.NewEncoder().Bytes([]byte(val))
	if err != nil {
		return 0, err
	}

	if max >= 0 && max < len(encoded) {
		encoded = encoded[:max]
	}

	n := copy(c.buffer[c.pos:], encoded)
	c.pos += n
	return n, nil
}
