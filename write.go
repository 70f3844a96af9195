package cursor

import (
	"encoding/binary"
	"math"
)

// WriteUint8 writes an unsigned 8 bit integer to the buffer
func (c *Cursor) WriteUint8(val uint8) error {
	if err := c.check(1); err != nil {
		return err
	}

	c.buffer[c.pos] = val
	c.pos++
	return nil
}

// WriteInt8 writes a signed 8 bit integer to the buffer
func (c *Cursor) WriteInt8(val int8) error {
	return c.WriteUint8(uint8(val))
}

// WriteUint16LE writes an unsigned 16 bit little endian integer to the buffer
func (c *Cursor) WriteUint16LE(val uint16) error {
	if err := c.check(2); err != nil {
		return err
	}

	binary.LittleEndian.PutUint16(c.buffer[c.pos:], val)
	c.pos += 2
	return nil
}

// WriteUint16BE writes an unsigned 16 bit big endian integer to the buffer
func (c *Cursor) WriteUint16BE(val uint16) error {
	if err := c.check(2); err != nil {
		return err
	}

	binary.BigEndian.PutUint16(c.buffer[c.pos:], val)
	c.pos += 2
	return nil
}

// WriteInt16LE writes a signed 16 bit little endian integer to the buffer
func (c *Cursor) WriteInt16LE(val int16) error {
	return c.WriteUint16LE(uint16(val))
}

// WriteInt16BE writes a signed 16 bit big endian integer to the buffer
func (c *Cursor) WriteInt16BE(val int16) error {
	return c.WriteUint16BE(uint16(val))
}

// WriteUint32LE writes an unsigned 32 bit little endian integer to the buffer
func (c *Cursor) WriteUint32LE(val uint32) error {
	if err := c.check(4); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(c.buffer[c.pos:], val)
	c.pos += 4
	return nil
}

// WriteUint32BE writes an unsigned 32 bit big endian integer to the buffer
func (c *Cursor) WriteUint32BE(val uint32) error {
	if err := c.check(4); err != nil {
		return err
	}

	binary.BigEndian.PutUint32(c.buffer[c.pos:], val)
	c.pos += 4
	return nil
}

// WriteInt32LE writes a signed 32 bit little endian integer to the buffer
func (c *Cursor) WriteInt32LE(val int32) error {
	return c.WriteUint32LE(uint32(val))
}

// WriteInt32BE writes a signed 32 bit big endian integer to the buffer
func (c *Cursor) WriteInt32BE(val int32) error {
	return c.WriteUint32BE(uint32(val))
}

// WriteUint64LE writes an unsigned 64 bit little endian integer to the buffer
func (c *Cursor) WriteUint64LE(val uint64) error {
	if err := c.check(8); err != nil {
		return err
	}

	binary.LittleEndian.PutUint64(c.buffer[c.pos:], val)
	c.pos += 8
	return nil
}

// WriteUint64BE writes an unsigned 64 bit big endian integer to the buffer
func (c *Cursor) WriteUint64BE(val uint64) error {
	if err := c.check(8); err != nil {
		return err
	}

	binary.BigEndian.PutUint64(c.buffer[c.pos:], val)
	c.pos += 8
	return nil
}

// WriteInt64LE writes a signed 64 bit little endian integer to the buffer
func (c *Cursor) WriteInt64LE(val int64) error {
	return c.WriteUint64LE(uint64(val))
}

// WriteInt64BE writes a signed 64 bit big endian integer to the buffer
func (c *Cursor) WriteInt64BE(val int64) error {
	return c.WriteUint64BE(uint64(val))
}

// WriteFloat32LE writes a 32 bit little endian IEEE-754 float to the buffer
func (c *Cursor) WriteFloat32LE(val float32) error {
	return c.WriteUint32LE(math.Float32bits(val))
}

// WriteFloat32BE writes a 32 bit big endian IEEE-754 float to the buffer
func (c *Cursor) WriteFloat32BE(val float32) error {
	return c.WriteUint32BE(math.Float32bits(val))
}

// WriteFloat64LE writes a 64 bit little endian IEEE-754 double to the buffer
func (c *Cursor) WriteFloat64LE(val float64) error {
	return c.WriteUint64LE(math.Float64bits(val))
}

// WriteFloat64BE writes a 64 bit big endian IEEE-754 double to the buffer
func (c *Cursor) WriteFloat64BE(val float64) error {
	return c.WriteUint64BE(math.Float64bits(val))
}
