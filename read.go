package cursor

import (
	"encoding/binary"
	"math"
)

// ReadUint8 reads an unsigned 8 bit integer from the buffer
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.check(1); err != nil {
		return 0, err
	}

	v := c.buffer[c.pos]
	c.pos++
	return v, nil
}

// ReadInt8 reads a signed 8 bit integer from the buffer
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16LE reads an unsigned 16 bit little endian integer from the buffer
func (c *Cursor) ReadUint16LE() (uint16, error) {
	if err := c.check(2); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint16(c.buffer[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint16BE reads an unsigned 16 bit big endian integer from the buffer
func (c *Cursor) ReadUint16BE() (uint16, error) {
	if err := c.check(2); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint16(c.buffer[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadInt16LE reads a signed 16 bit little endian integer from the buffer
func (c *Cursor) ReadInt16LE() (int16, error) {
	v, err := c.ReadUint16LE()
	return int16(v), err
}

// ReadInt16BE reads a signed 16 bit big endian integer from the buffer
func (c *Cursor) ReadInt16BE() (int16, error) {
	v, err := c.ReadUint16BE()
	return int16(v), err
}

// ReadUint32LE reads an unsigned 32 bit little endian integer from the buffer
func (c *Cursor) ReadUint32LE() (uint32, error) {
	if err := c.check(4); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint32(c.buffer[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadUint32BE reads an unsigned 32 bit big endian integer from the buffer
func (c *Cursor) ReadUint32BE() (uint32, error) {
	if err := c.check(4); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint32(c.buffer[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadInt32LE reads a signed 32 bit little endian integer from the buffer
func (c *Cursor) ReadInt32LE() (int32, error) {
	v, err := c.ReadUint32LE()
	return int32(v), err
}

// ReadInt32BE reads a signed 32 bit big endian integer from the buffer
func (c *Cursor) ReadInt32BE() (int32, error) {
	v, err := c.ReadUint32BE()
	return int32(v), err
}

// ReadUint64LE reads an unsigned 64 bit little endian integer from the buffer
func (c *Cursor) ReadUint64LE() (uint64, error) {
	if err := c.check(8); err != nil {
		return 0, err
	}

	v := binary.LittleEndian.Uint64(c.buffer[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadUint64BE reads an unsigned 64 bit big endian integer from the buffer
func (c *Cursor) ReadUint64BE() (uint64, error) {
	if err := c.check(8); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint64(c.buffer[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadInt64LE reads a signed 64 bit little endian integer from the buffer
func (c *Cursor) ReadInt64LE() (int64, error) {
	v, err := c.ReadUint64LE()
	return int64(v), err
}

// ReadInt64BE reads a signed 64 bit big endian integer from the buffer
func (c *Cursor) ReadInt64BE() (int64, error) {
	v, err := c.ReadUint64BE()
	return int64(v), err
}

// ReadFloat32LE reads a 32 bit little endian IEEE-754 float from the buffer
func (c *Cursor) ReadFloat32LE() (float32, error) {
	v, err := c.ReadUint32LE()
	return math.Float32frombits(v), err
}

// ReadFloat32BE reads a 32 bit big endian IEEE-754 float from the buffer
func (c *Cursor) ReadFloat32BE() (float32, error) {
	v, err := c.ReadUint32BE()
	return math.Float32frombits(v), err
}

// ReadFloat64LE reads a 64 bit little endian IEEE-754 double from the buffer
func (c *Cursor) ReadFloat64LE() (float64, error) {
	v, err := c.ReadUint64LE()
	return math.Float64frombits(v), err
}

// ReadFloat64BE reads a 64 bit big endian IEEE-754 double from the buffer
func (c *Cursor) ReadFloat64BE() (float64, error) {
	v, err := c.ReadUint64BE()
	return math.Float64frombits(v), err
}
