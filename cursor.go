package cursor

// cursorTag is stamped into every Cursor at construction and checked by
// IsCursor, so that identity survives across independently loaded copies of
// the package
const cursorTag = 0x43555253

// Cursor wraps a fixed length byte slice and tracks a current position,
// advancing it by the size consumed or produced on every access
type Cursor struct {
	buffer []byte
	pos    int
	tag    uint32
}

// New creates a Cursor over the passed buffer, sharing its storage,
// with the position at 0
func New(buffer []byte) *Cursor {
	return &Cursor{
		buffer: buffer,
		pos:    0,
		tag:    cursorTag,
	}
}

// NewSize creates a Cursor over a freshly allocated zeroed buffer of n bytes
func NewSize(n int) *Cursor {
	return New(make([]byte, n))
}

// From creates a Cursor from an arbitrary value: a byte slice is wrapped
// directly, an existing Cursor yields a fresh view over the same storage,
// and anything else fails with ErrNotBuffer
func From(v interface{}) (*Cursor, error) {
	switch b := v.(type) {
	case []byte:
		return New(b), nil
	case *Cursor:
		return New(b.buffer), nil
	}
	return nil, ErrNotBuffer
}

type tagged interface {
	cursorTag() uint32
}

func (c *Cursor) cursorTag() uint32 { return c.tag }

// IsCursor reports whether v is a Cursor, by checking for the construction
// time tag rather than relying on type identity
func IsCursor(v interface{}) bool {
	t, ok := v.(tagged)
	return ok && t.cursorTag() == cursorTag
}

// Pos returns the current position of the Cursor
func (c *Cursor) Pos() int { return c.pos }

// Len returns the fixed size of the underlying buffer
func (c *Cursor) Len() int { return len(c.buffer) }

// Remaining returns the number of bytes between the current position and the
// end of the buffer
func (c *Cursor) Remaining() int { return len(c.buffer) - c.pos }

// EOF returns true iff the position is at the end of the buffer
func (c *Cursor) EOF() bool { return c.pos == len(c.buffer) }

// Seek sets the position of the Cursor to the specified absolute position,
// failing with a RangeError outside [0, Len]
func (c *Cursor) Seek(position int) error {
	if position < 0 || position > len(c.buffer) {
		return &RangeError{Position: position, Length: len(c.buffer)}
	}

	c.pos = position
	return nil
}

// MustSeek will try to seek to the passed position and panic on error
func (c *Cursor) MustSeek(position int) {
	if err := c.Seek(position); err != nil {
		panic(err)
	}
}

// Move offsets the position of the Cursor by the signed delta, under the same
// bound conditions as Seek
func (c *Cursor) Move(delta int) error {
	return c.Seek(c.pos + delta)
}

// check verifies that n more bytes can be accessed at the current position,
// guarding both against requests larger than the whole buffer and requests
// that would run past the remaining tail
func (c *Cursor) check(n int) error {
	if n < 0 || n > len(c.buffer) || len(c.buffer)-c.pos < n {
		return &OverflowError{Length: len(c.buffer), Position: c.pos, Size: n}
	}
	return nil
}

// Bytes returns an independent copy of the bytes from the start of the buffer
// up to (not including) the current position
func (c *Cursor) Bytes() []byte {
	out := make([]byte, c.pos)
	copy(out, c.buffer[:c.pos])
	return out
}

// Slice creates a new Cursor over the next n bytes, sharing this Cursor's
// storage (zero-copy) with its own position starting at 0, and advances this
// Cursor past the sliced region as if the bytes were consumed
func (c *Cursor) Slice(n int) (*Cursor, error) {
	end := c.pos + n
	if n < 0 || end > len(c.buffer) {
		return nil, &RangeError{Position: end, Length: len(c.buffer)}
	}

	child := New(c.buffer[c.pos:end:end])
	c.pos = end
	return child, nil
}

// SliceRemaining creates a new Cursor over everything between the current
// position and the end of the buffer, and advances this Cursor to the end
func (c *Cursor) SliceRemaining() *Cursor {
	child := New(c.buffer[c.pos:])
	c.pos = len(c.buffer)
	return child
}

// Write copies p into the buffer at the current position and advances past
// it, implementing io.Writer over the remaining space. A write that does not
// fit fails with an OverflowError without mutating the buffer.
func (c *Cursor) Write(p []byte) (int, error) {
	if err := c.check(len(p)); err != nil {
		return 0, err
	}

	copy(c.buffer[c.pos:], p)
	c.pos += len(p)
	return len(p), nil
}

// Fill writes n copies of the byte b at the current position and advances
// past them
func (c *Cursor) Fill(b byte, n int) error {
	if err := c.check(n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		c.buffer[c.pos+i] = b
	}

	c.pos += n
	return nil
}

// FillPattern writes n bytes of the repeating pattern pat at the current
// position and advances past them. An empty pattern zero fills.
func (c *Cursor) FillPattern(pat []byte, n int) error {
	if len(pat) == 0 {
		return c.Fill(0, n)
	}

	if err := c.check(n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		c.buffer[c.pos+i] = pat[i%len(pat)]
	}

	c.pos += n
	return nil
}

// CopyFrom copies the bytes between the source Cursor's current position and
// its end into this buffer at the current position, advancing this Cursor
// past them. The source Cursor's position is not mutated.
func (c *Cursor) CopyFrom(src *Cursor) error {
	return c.CopyRange(src, src.pos, len(src.buffer))
}

// CopyRange copies the bytes in [start, end) of the source Cursor's buffer
// into this buffer at the current position, advancing this Cursor past them.
// The bounds are explicit: a start of 0 means offset 0, not the source's
// position. The source Cursor's position is not mutated.
func (c *Cursor) CopyRange(src *Cursor, start, end int) error {
	if start < 0 || start > len(src.buffer) {
		return &RangeError{Position: start, Length: len(src.buffer)}
	}
	if end < start || end > len(src.buffer) {
		return &RangeError{Position: end, Length: len(src.buffer)}
	}

	if err := c.check(end - start); err != nil {
		return err
	}

	copy(c.buffer[c.pos:], src.buffer[start:end])
	c.pos += end - start
	return nil
}
