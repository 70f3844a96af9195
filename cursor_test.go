package cursor

import (
	"bytes"
	"testing"
)

func TestSeekBounds(t *testing.T) {
	c := NewSize(10)
	c.MustSeek(4)

	for _, pos := range []int{-1, 11} {
		err := c.Seek(pos)
		rangeErr, ok := err.(*RangeError)
		if !ok {
			t.Fatalf("expected a RangeError seeking to %v, got %v", pos, err)
		}
		if rangeErr.Position != pos || rangeErr.Length != 10 {
			t.Errorf("expected range error (%v, 10), got (%v, %v)", pos, rangeErr.Position, rangeErr.Length)
		}
		if c.Pos() != 4 {
			t.Error("a failed seek should not move the position")
		}
	}

	// seeking to the length itself is valid, it is the end of the buffer
	if err := c.Seek(10); err != nil {
		t.Error(err)
	}
	if !c.EOF() {
		t.Error("expected EOF after seeking to the end")
	}
}

func TestMove(t *testing.T) {
	c := NewSize(8)

	if err := c.Move(5); err != nil {
		t.Error(err)
	}
	if c.Pos() != 5 {
		t.Errorf("expected position 5, got %v", c.Pos())
	}

	if err := c.Move(-5); err != nil {
		t.Error(err)
	}
	if c.Pos() != 0 {
		t.Errorf("expected position 0, got %v", c.Pos())
	}

	if err := c.Move(-1); err == nil {
		t.Error("expected moving before the start of the buffer to fail")
	}
	if err := c.Move(9); err == nil {
		t.Error("expected moving past the end of the buffer to fail")
	}
	if c.Pos() != 0 {
		t.Error("a failed move should not move the position")
	}
}

// the write-then-write-then-overflow walkthrough over a 4 byte buffer
func TestWriteSequence(t *testing.T) {
	c := NewSize(4)

	if err := c.WriteUint16BE(0x1234); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c.buffer, []byte{0x12, 0x34, 0x00, 0x00}) {
		t.Errorf("unexpected buffer contents: %x", c.buffer)
	}
	if c.Pos() != 2 {
		t.Errorf("expected position 2, got %v", c.Pos())
	}

	if err := c.WriteUint16BE(0xABCD); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c.buffer, []byte{0x12, 0x34, 0xAB, 0xCD}) {
		t.Errorf("unexpected buffer contents: %x", c.buffer)
	}
	if c.Pos() != 4 || !c.EOF() {
		t.Error("expected the cursor to be at the end of the buffer")
	}

	err := c.WriteUint8(0xFF)
	overflow, ok := err.(*OverflowError)
	if !ok {
		t.Fatalf("expected an OverflowError, got %v", err)
	}
	if overflow.Length != 4 || overflow.Position != 4 || overflow.Size != 1 {
		t.Errorf("expected overflow (4, 4, 1), got (%v, %v, %v)",
			overflow.Length, overflow.Position, overflow.Size)
	}
}

func TestSliceAliasing(t *testing.T) {
	buf := make([]byte, 8)
	c := New(buf)
	c.MustSeek(2)

	child, err := c.Slice(4)
	if err != nil {
		t.Fatal(err)
	}

	if c.Pos() != 6 {
		t.Errorf("expected the parent to advance to 6, got %v", c.Pos())
	}
	if child.Pos() != 0 {
		t.Errorf("expected the child to start at 0, got %v", child.Pos())
	}
	if child.Len() != 4 {
		t.Errorf("expected the child length to be 4, got %v", child.Len())
	}

	// writes through the child are visible in the parent's storage
	if err := child.WriteUint16BE(0xBEEF); err != nil {
		t.Fatal(err)
	}
	if buf[2] != 0xBE || buf[3] != 0xEF {
		t.Errorf("child write not visible through the parent storage: %x", buf)
	}

	// and writes through the parent's storage are visible in the child
	buf[4] = 0x7F
	v, err := child.ReadUint8()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x7F {
		t.Errorf("parent write not visible through the child: %#x", v)
	}
}

func TestSliceOutOfRange(t *testing.T) {
	c := NewSize(4)
	c.MustSeek(2)

	if _, err := c.Slice(3); err == nil {
		t.Error("expected slicing past the end of the buffer to fail")
	} else if _, ok := err.(*RangeError); !ok {
		t.Errorf("expected a RangeError, got %T", err)
	}

	if c.Pos() != 2 {
		t.Error("a failed slice should not move the position")
	}
}

func TestSliceRemaining(t *testing.T) {
	c := New([]byte{1, 2, 3, 4, 5})
	c.MustSeek(3)

	child := c.SliceRemaining()

	if !c.EOF() {
		t.Error("expected the parent to advance to the end")
	}
	if child.Len() != 2 {
		t.Errorf("expected the child length to be 2, got %v", child.Len())
	}

	v, err := child.ReadUint8()
	if err != nil {
		t.Fatal(err)
	}
	if v != 4 {
		t.Errorf("expected the child to start at the parent's old position, got %v", v)
	}
}

func TestBytes(t *testing.T) {
	c := New([]byte{1, 2, 3, 4})
	c.MustSeek(2)

	out := c.Bytes()
	if !bytes.Equal(out, []byte{1, 2}) {
		t.Errorf("expected the bytes before the position, got %v", out)
	}
	if c.Pos() != 2 {
		t.Error("Bytes should not move the position")
	}

	// the copy is independent of the backing storage
	out[0] = 0xFF
	if c.buffer[0] != 1 {
		t.Error("mutating the returned copy should not touch the buffer")
	}
}

func TestWriteBytes(t *testing.T) {
	c := NewSize(4)

	n, err := c.Write([]byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || c.Pos() != 3 {
		t.Errorf("expected to write 3 bytes, wrote %v at position %v", n, c.Pos())
	}

	n, err = c.Write([]byte{4, 5})
	if err == nil {
		t.Fatal("expected a write past the end of the buffer to fail")
	}
	if n != 0 {
		t.Error("a failed write should report 0 bytes written")
	}
	if c.buffer[3] != 0 {
		t.Error("a failed write should not mutate the buffer")
	}
	if c.Pos() != 3 {
		t.Error("a failed write should not move the position")
	}
}

func TestFill(t *testing.T) {
	c := NewSize(6)
	c.MustSeek(1)

	if err := c.Fill(0xAA, 4); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(c.buffer, []byte{0, 0xAA, 0xAA, 0xAA, 0xAA, 0}) {
		t.Errorf("unexpected buffer contents: %x", c.buffer)
	}
	if c.Pos() != 5 {
		t.Errorf("expected position 5, got %v", c.Pos())
	}

	err := c.Fill(0xBB, 2)
	overflow, ok := err.(*OverflowError)
	if !ok {
		t.Fatalf("expected an OverflowError, got %v", err)
	}
	if overflow.Length != 6 || overflow.Position != 5 || overflow.Size != 2 {
		t.Errorf("expected overflow (6, 5, 2), got (%v, %v, %v)",
			overflow.Length, overflow.Position, overflow.Size)
	}
}

func TestFillPattern(t *testing.T) {
	c := NewSize(5)

	if err := c.FillPattern([]byte{0xDE, 0xAD}, 5); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(c.buffer, []byte{0xDE, 0xAD, 0xDE, 0xAD, 0xDE}) {
		t.Errorf("unexpected buffer contents: %x", c.buffer)
	}
	if !c.EOF() {
		t.Error("expected the cursor to be at the end of the buffer")
	}
}

func TestCopyFrom(t *testing.T) {
	src := New([]byte{1, 2, 3, 4})
	src.MustSeek(1)

	dst := NewSize(5)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(dst.buffer, []byte{2, 3, 4, 0, 0}) {
		t.Errorf("unexpected buffer contents: %v", dst.buffer)
	}
	if dst.Pos() != 3 {
		t.Errorf("expected position 3, got %v", dst.Pos())
	}
	if src.Pos() != 1 {
		t.Error("copying should not move the source position")
	}
}

func TestCopyRange(t *testing.T) {
	src := New([]byte{1, 2, 3, 4})
	src.MustSeek(2)

	// an explicit start of 0 means offset 0, not the source position
	dst := NewSize(2)
	if err := dst.CopyRange(src, 0, 2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.buffer, []byte{1, 2}) {
		t.Errorf("unexpected buffer contents: %v", dst.buffer)
	}

	if err := dst.CopyRange(src, 0, 1); err == nil {
		t.Error("expected copying into a full buffer to overflow")
	} else if _, ok := err.(*OverflowError); !ok {
		t.Errorf("expected an OverflowError, got %T", err)
	}

	if err := dst.CopyRange(src, 3, 5); err == nil {
		t.Error("expected an out of range source end to fail")
	} else if _, ok := err.(*RangeError); !ok {
		t.Errorf("expected a RangeError, got %T", err)
	}
}

func TestFrom(t *testing.T) {
	c, err := From([]byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 {
		t.Errorf("expected length 3, got %v", c.Len())
	}

	c.MustSeek(2)
	view, err := From(c)
	if err != nil {
		t.Fatal(err)
	}
	if view.Pos() != 0 || view.Len() != 3 {
		t.Error("expected a fresh view over the same storage")
	}

	if _, err = From(42); err != ErrNotBuffer {
		t.Errorf("expected ErrNotBuffer, got %v", err)
	}
}

func TestIsCursor(t *testing.T) {
	if !IsCursor(NewSize(1)) {
		t.Error("expected a Cursor to be recognized")
	}

	for _, v := range []interface{}{nil, 42, "cursor", []byte{1}, struct{}{}} {
		if IsCursor(v) {
			t.Errorf("did not expect %T to be recognized as a Cursor", v)
		}
	}
}

func TestNewSize(t *testing.T) {
	c := NewSize(16)

	if c.Len() != 16 || c.Pos() != 0 || c.Remaining() != 16 {
		t.Errorf("unexpected fresh cursor state: len %v, pos %v", c.Len(), c.Pos())
	}

	for i, b := range c.buffer {
		if b != 0 {
			t.Errorf("pos: %v, expected a zeroed buffer, got %v", i, b)
		}
	}
}
