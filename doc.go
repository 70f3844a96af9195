// Package cursor implements a bounds checked cursor over a fixed size byte buffer
//
// initially tried to build parsers directly on top of byte slices, but that
// means every call site has to carry its own offset and pass it around, which
// resulted in calls like
//
//	val, pos = readUint32(buffer, pos)
//
// which became unmaintainable after a while, and along with all the side
// maintainance looked extremely ugly
//
// this (tries) to implement a minimal cursor wrapper that tracks the position
// for you, refuses any access that would run past the end of the buffer, and
// supports zero-copy sub-views over the same storage
//
// the backing buffer is supplied by the caller and is never reallocated or
// resized; a Cursor performs no internal synchronization, so aliased views
// over one buffer must be serialized by the caller
package cursor

import "io"

// Buffer defines an abstraction for an object that allows reading and writing
// of binary values at a tracked position within a fixed range
type Buffer interface {
	io.Writer

	Pos() int
	Len() int
	Remaining() int
	EOF() bool
	Seek(int) error
	Move(int) error
	Bytes() []byte

	ReadInt8() (int8, error)
	ReadUint8() (uint8, error)
	ReadInt16LE() (int16, error)
	ReadInt16BE() (int16, error)
	ReadUint16LE() (uint16, error)
	ReadUint16BE() (uint16, error)
	ReadInt32LE() (int32, error)
	ReadInt32BE() (int32, error)
	ReadUint32LE() (uint32, error)
	ReadUint32BE() (uint32, error)
	ReadInt64LE() (int64, error)
	ReadInt64BE() (int64, error)
	ReadUint64LE() (uint64, error)
	ReadUint64BE() (uint64, error)
	ReadFloat32LE() (float32, error)
	ReadFloat32BE() (float32, error)
	ReadFloat64LE() (float64, error)
	ReadFloat64BE() (float64, error)

	WriteInt8(int8) error
	WriteUint8(uint8) error
	WriteInt16LE(int16) error
	WriteInt16BE(int16) error
	WriteUint16LE(uint16) error
	WriteUint16BE(uint16) error
	WriteInt32LE(int32) error
	WriteInt32BE(int32) error
	WriteUint32LE(uint32) error
	WriteUint32BE(uint32) error
	WriteInt64LE(int64) error
	WriteInt64BE(int64) error
	WriteUint64LE(uint64) error
	WriteUint64BE(uint64) error
	WriteFloat32LE(float32) error
	WriteFloat32BE(float32) error
	WriteFloat64LE(float64) error
	WriteFloat64BE(float64) error

	ReadString(int) (string, error)
	WriteString(string) (int, error)
	Fill(byte, int) error
	CopyFrom(*Cursor) error
}
